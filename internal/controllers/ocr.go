package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/kdennisod/cash-stuffing/internal/events"
	"github.com/kdennisod/cash-stuffing/internal/httputil"
	"github.com/kdennisod/cash-stuffing/internal/ocr"
	"github.com/rs/zerolog/log"
)

// @Summary		Scan receipt
// @Description	Reads the amount and the store name from the image of a receipt.
// @Description	If no amount can be found, success is false but the status is 200.
// @Tags			Receipts
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	OCRResponse
// @Failure		400		{object}	OCRResponse
// @Failure		401		{object}	httputil.Response
// @Failure		413		{object}	OCRResponse
// @Failure		500		{object}	OCRResponse
// @Param			receipt	formData	file	true	"Image of the receipt (png, jpg, jpeg)"
// @Router			/ocr [post]
func (co Controller) OCR(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, co.MaxUploadSize)

	header, err := c.FormFile("receipt")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, OCRResponse{Message: errFileTooLarge.Error()})
		return
	} else if err != nil || header.Filename == "" {
		c.JSON(http.StatusBadRequest, OCRResponse{Message: errNoFilePost.Error()})
		return
	}

	if !ocr.AllowedFile(header.Filename) {
		c.JSON(http.StatusBadRequest, OCRResponse{Message: errWrongFileType.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		httputil.ServerError(c, err)
		return
	}
	defer file.Close()

	result, err := co.Scanner.Scan(c.Request.Context(), file)
	if errors.Is(err, ocr.ErrNoAmount) {
		c.JSON(http.StatusOK, OCRResponse{Message: err.Error()})
		return
	} else if err != nil {
		log.Error().Err(err).Str("request-id", requestid.Get(c)).Str("file", header.Filename).Msg("receipt could not be scanned")
		c.JSON(http.StatusInternalServerError, OCRResponse{Message: ocr.ErrRecognition.Error()})
		return
	}

	co.changed(c, events.New(events.ReceiptScanned, userID(c)).WithAmount(result.Amount))

	c.JSON(http.StatusOK, OCRResponse{
		Success:   true,
		Amount:    &result.Amount,
		StoreName: result.StoreName,
	})
}
