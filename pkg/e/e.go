package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Доменные ошибки продукта (400 Bad Request)
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrPriceMustBePositive = fmt.Errorf("price must be greater than 0")
	ErrUnknownCategory     = fmt.Errorf("unknown product category")

	// Доменные ошибки заказа (400 Bad Request)
	ErrOrderItemsRequired     = fmt.Errorf("order must have at least one item")
	ErrQuantityMustBePositive = fmt.Errorf("quantity for product must be greater than 0")
	ErrItemPriceNegative      = fmt.Errorf("price for product cannot be negative")
	ErrTotalNegative          = fmt.Errorf("total must be greater than 0")
	ErrUnknownOrderStatus     = fmt.Errorf("unknown order status")

	// 400 Bad Request (валидация запроса)
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidProductID     = fmt.Errorf("product id must be a valid uuid")
	ErrInvalidOrderID       = fmt.Errorf("order id must be a valid uuid")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrNoImage              = fmt.Errorf("no image provided")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 404 Not Found
	ErrProductNotFound    = fmt.Errorf("product not found")
	ErrProductUnavailable = fmt.Errorf("product is no longer available")
	ErrOrderNotFound      = fmt.Errorf("order not found")

	// 401 Unauthorized
	ErrOrderNotUpdatable = fmt.Errorf("order with this status cannot be updated")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
