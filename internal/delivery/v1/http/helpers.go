package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/easy-order/go-backend/internal/usecase"
	"github.com/easy-order/go-backend/pkg/e"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// ErrorResponse — единый формат тела ошибки API.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Error      string `json:"error" example:"Not Found"`
	Message    string `json:"message" example:"product not found"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: code,
		Error:      http.StatusText(code),
		Message:    message,
	}
}

// ToHTTPResponse сопоставляет ошибку приложения с HTTP-статусом и сообщением.
// Неизвестные ошибки не раскрываются клиенту и превращаются в 500.
func ToHTTPResponse(err error) (int, string) {
	badRequest := []error{
		e.ErrStatusBadRequest,
		e.ErrProductNameRequired,
		e.ErrPriceMustBePositive,
		e.ErrUnknownCategory,
		e.ErrOrderItemsRequired,
		e.ErrQuantityMustBePositive,
		e.ErrItemPriceNegative,
		e.ErrTotalNegative,
		e.ErrUnknownOrderStatus,
		e.ErrInvalidPrice,
		e.ErrPricePrecision,
		e.ErrInvalidProductID,
		e.ErrInvalidOrderID,
		e.ErrExpectedMultipart,
		e.ErrNoImage,
		e.ErrFileTooLarge,
		e.ErrUnsupportedMediaType,
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}

	notFound := []error{
		e.ErrProductNotFound,
		e.ErrProductUnavailable,
		e.ErrOrderNotFound,
	}
	for _, target := range notFound {
		if errors.Is(err, target) {
			return http.StatusNotFound, target.Error()
		}
	}

	if errors.Is(err, e.ErrOrderNotUpdatable) {
		return http.StatusUnauthorized, e.ErrOrderNotUpdatable.Error()
	}

	return http.StatusInternalServerError, e.ErrInternalServerError.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// decodeJSON строго разбирает тело запроса: неизвестные поля отклоняются.
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// parseUUIDParam валидирует path-параметр как UUID.
// sentinel определяет, какой ошибкой ответит API при невалидном значении.
func parseUUIDParam(raw string, sentinel error) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", e.Wrap(raw, sentinel)
	}

	return id.String(), nil
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit (e.g. 10^9 rubles)
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	// Reject negative
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	// Enforce max value (e.g. 1 billion rubles = 100_000_000_000 cents)
	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100)) // 1B rub in cents
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	// Check decimal places
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision // "price must have at most 2 decimal places"
	}

	// Convert to cents: multiply by 100 and round
	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}

// formatPrice переводит цену из минорных единиц обратно в десятичную строку ("199.90").
func formatPrice(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func toOrderItemReqs(items []orderItemRequest) []usecase.OrderItemReq {
	if items == nil {
		return nil
	}

	result := make([]usecase.OrderItemReq, 0, len(items))
	for _, item := range items {
		result = append(result, usecase.NewOrderItemReq(item.ProductID, item.Quantity))
	}

	return result
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

// parseImage читает единственный файл из multipart-поля "image".
func parseImage(files []*multipart.FileHeader, maxSize int64) (*usecase.ProductImage, error) {
	if len(files) == 0 {
		return nil, e.ErrNoImage
	}

	fh := files[0]
	data, mimeType, err := readFile(fh, maxSize)
	if err != nil {
		return nil, err
	}

	return usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
