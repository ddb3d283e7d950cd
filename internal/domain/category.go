package domain

import "github.com/easy-order/go-backend/pkg/e"

// ProductCategory описывает раздел меню, к которому относится продукт.
type ProductCategory string

const (
	CategoryBurger   ProductCategory = "burger"
	CategorySideDish ProductCategory = "side_dish"
	CategoryDrink    ProductCategory = "drink"
	CategoryDessert  ProductCategory = "dessert"
)

// ParseProductCategory валидирует строковое значение категории.
func ParseProductCategory(s string) (ProductCategory, error) {
	switch ProductCategory(s) {
	case CategoryBurger, CategorySideDish, CategoryDrink, CategoryDessert:
		return ProductCategory(s), nil
	default:
		return "", e.ErrUnknownCategory
	}
}
