package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/controller"
	"github.com/kdennisod/cash-stuffing/internal/types"
	"golang.org/x/exp/slices"
)

var (
	errUsage = errors.New("wrong number of arguments")
	errQuit  = errors.New("quit")
)

type command struct {
	usage string
	help  string
	args  int
	run   func(ctx context.Context, s *shell, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"show": {"show", "show the current period", 0, func(_ context.Context, s *shell, _ []string) error {
			s.c.Render()
			return nil
		}},
		"period": {"period YEAR-MONTH", "open another period, the month is zero based", 1, func(ctx context.Context, s *shell, args []string) error {
			p, err := types.ParsePeriod(args[0])
			if err != nil {
				return err
			}
			return s.c.ChangePeriod(ctx, p)
		}},
		"next": {"next", "open the next month", 0, func(ctx context.Context, s *shell, _ []string) error {
			return s.c.ChangePeriod(ctx, s.c.State().Period.AddMonths(1))
		}},
		"prev": {"prev", "open the previous month", 0, func(ctx context.Context, s *shell, _ []string) error {
			return s.c.ChangePeriod(ctx, s.c.State().Period.AddMonths(-1))
		}},
		"reload": {"reload", "load the data from the server", 0, func(ctx context.Context, s *shell, _ []string) error {
			return s.c.LoadData(ctx)
		}},
		"refresh": {"refresh", "load only the current period from the server", 0, func(ctx context.Context, s *shell, _ []string) error {
			return s.c.RefreshPeriod(ctx)
		}},
		"save": {"save", "write all data to the server", 0, func(ctx context.Context, s *shell, _ []string) error {
			return s.c.SaveData(ctx)
		}},
		"total": {"total AMOUNT", "set the total amount of the period", 1, func(ctx context.Context, s *shell, args []string) error {
			return s.c.SetTotal(ctx, args[0])
		}},
		"presets": {"presets", "list the predefined categories", 0, func(_ context.Context, s *shell, _ []string) error {
			for _, p := range budget.Presets() {
				fmt.Fprintf(s.out, "%-14s [%s]\n", p.Name, p.Icon)
			}
			return nil
		}},
		"add-category": {"add-category AMOUNT NAME", "create a category", 2, func(ctx context.Context, s *shell, args []string) error {
			return s.c.AddCategory(ctx, controller.CategoryInput{Name: strings.Join(args[1:], " "), Amount: args[0]})
		}},
		"add-preset": {"add-preset AMOUNT PRESET", "create a predefined category", 2, func(ctx context.Context, s *shell, args []string) error {
			return s.c.AddCategory(ctx, controller.CategoryInput{Preset: strings.Join(args[1:], " "), Amount: args[0]})
		}},
		"delete-category": {"delete-category CATEGORY", "delete a category with all its expenses", 1, func(ctx context.Context, s *shell, args []string) error {
			id, err := s.category(args[0])
			if err != nil {
				return err
			}
			return s.c.DeleteCategory(ctx, id)
		}},
		"add-expense": {"add-expense CATEGORY AMOUNT DESCRIPTION", "record an expense", 3, func(ctx context.Context, s *shell, args []string) error {
			id, err := s.category(args[0])
			if err != nil {
				return err
			}
			return s.c.AddExpense(ctx, id, strings.Join(args[2:], " "), args[1])
		}},
		"delete-expense": {"delete-expense CATEGORY EXPENSE", "delete an expense", 2, func(ctx context.Context, s *shell, args []string) error {
			categoryID, err := s.category(args[0])
			if err != nil {
				return err
			}

			expenseID, err := s.expense(categoryID, args[1])
			if err != nil {
				return err
			}
			return s.c.DeleteExpense(ctx, categoryID, expenseID)
		}},
		"scan": {"scan CATEGORY FILE", "record an expense from the image of a receipt", 2, func(ctx context.Context, s *shell, args []string) error {
			id, err := s.category(args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			return s.c.ScanReceipt(ctx, id, filepath.Base(args[1]), f)
		}},
		"help": {"help", "list the commands", 0, func(_ context.Context, s *shell, _ []string) error {
			printCommands(s.out)
			return nil
		}},
		"quit": {"quit", "exit the shell", 0, func(context.Context, *shell, []string) error {
			return errQuit
		}},
	}
}

func printCommands(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		fmt.Fprintf(w, "  %-42s %s\n", commands[name].usage, commands[name].help)
	}
	fmt.Fprintf(w, "\nCATEGORY and EXPENSE are IDs or positions in the list, starting at 1.\n")
}

type shell struct {
	c      *controller.Controller
	out    io.Writer
	errOut io.Writer
}

// exec runs a single command. Errors of the controller have already been
// shown to the user, all others are printed here.
func (s *shell) exec(ctx context.Context, args []string) error {
	cmd, ok := commands[args[0]]
	if !ok {
		err := fmt.Errorf("unknown command '%s', try help", args[0])
		fmt.Fprintln(s.errOut, err)
		return err
	}

	if len(args)-1 < cmd.args || (cmd.args == 0 && len(args) > 1) {
		fmt.Fprintf(s.errOut, "usage: %s\n", cmd.usage)
		return errUsage
	}

	err := cmd.run(ctx, s, args[1:])
	var shellErr *inputError
	if errors.As(err, &shellErr) || errors.Is(err, os.ErrNotExist) || errors.Is(err, types.ErrInvalidPeriod) {
		fmt.Fprintln(s.errOut, err)
	}

	return err
}

func (s *shell) interactive(ctx context.Context, in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, promptStyle.Render("> "))
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return
		}

		args := fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		if err := s.exec(ctx, args); errors.Is(err, errQuit) {
			return
		}

		if ctx.Err() != nil {
			return
		}
	}
}

// inputError is an error in a command argument.
type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

// category resolves a category of the current period by ID or position.
func (s *shell) category(ref string) (uuid.UUID, error) {
	categories := s.c.State().Budget.Categories

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(categories) {
			return uuid.Nil, &inputError{fmt.Sprintf("there is no category at position %d", n)}
		}
		return categories[n-1].ID, nil
	}

	id, err := uuid.Parse(ref)
	if err != nil {
		return uuid.Nil, &inputError{fmt.Sprintf("'%s' is neither a position nor a category ID", ref)}
	}
	return id, nil
}

// expense resolves an expense of a category by ID or position.
func (s *shell) expense(categoryID uuid.UUID, ref string) (uuid.UUID, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		category, ok := s.c.State().Budget.Category(categoryID)
		if !ok {
			return uuid.Nil, &inputError{budget.ErrCategoryNotFound.Error()}
		}

		if n < 1 || n > len(category.Expenses) {
			return uuid.Nil, &inputError{fmt.Sprintf("there is no expense at position %d", n)}
		}
		return category.Expenses[n-1].ID, nil
	}

	id, err := uuid.Parse(ref)
	if err != nil {
		return uuid.Nil, &inputError{fmt.Sprintf("'%s' is neither a position nor an expense ID", ref)}
	}
	return id, nil
}
