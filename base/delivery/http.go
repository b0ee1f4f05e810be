package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var errStatus = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{query.ErrNotFound, http.StatusNotFound},
	{domain.ErrBadParamInput, http.StatusBadRequest},
	{domain.ErrInvalidAddress, http.StatusBadRequest},
	{domain.ErrInvalidDuration, http.StatusBadRequest},
	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrPaymentMismatch, http.StatusBadRequest},
	{domain.ErrFeeOutOfRange, http.StatusBadRequest},
	{domain.ErrInvalidSignature, http.StatusUnauthorized},
	{domain.ErrUnauthorized, http.StatusForbidden},
	{domain.ErrNotOwnerOrNotApproved, http.StatusForbidden},
	{domain.ErrAuctionInactive, http.StatusConflict},
	{domain.ErrAuctionAlreadySettled, http.StatusConflict},
	{domain.ErrAuctionNotYetEnded, http.StatusConflict},
	{domain.ErrBidTooLow, http.StatusConflict},
	{domain.ErrReentrantCall, http.StatusConflict},
	{domain.ErrAuctionLocked, http.StatusConflict},
	{domain.ErrInsufficientBalance, http.StatusPaymentRequired},
	{domain.ErrNoPriceFeed, http.StatusUnprocessableEntity},
	{domain.ErrInvalidOracleData, http.StatusBadGateway},
	{domain.ErrStalePrice, http.StatusBadGateway},
	{domain.ErrTransferFailed, http.StatusBadGateway},
	{domain.ErrAmountOverflow, http.StatusUnprocessableEntity},
	{domain.ErrTreasuryNotSet, http.StatusInternalServerError},
}

// StatusOf maps a domain error to its http status, or fallback if none matches.
func StatusOf(err error, fallback int) int {
	for _, e := range errStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
