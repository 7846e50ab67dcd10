package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/openlocal/market/pkg/httpx"
	"github.com/openlocal/market/pkg/marketsdk"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeAndValidate decodes a JSON request body into dst and runs struct
// validation. On failure it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		marketsdk.ErrInvalidRequest.WithMessage("Request body must be valid JSON").WriteError(w)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		details := make(map[string]string)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				details[strings.ToLower(fe.Field())] = fe.Tag()
			}
		}
		apiErr := &marketsdk.APIError{
			StatusCode: http.StatusBadRequest,
			Code:       marketsdk.ErrorCodeValidation,
			Message:    "validation failed for some fields",
			Details:    details,
		}
		apiErr.WriteError(w)
		return false
	}

	return true
}

// userIDFromContext extracts the authenticated user id set by the authn
// middleware. Token subjects are decimal user ids.
func userIDFromContext(ctx context.Context) (int64, bool) {
	sub, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || sub == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
