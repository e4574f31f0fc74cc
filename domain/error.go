package domain

import "errors"

// Error types with HTTP status codes
type AppError struct {
	Message string
	Code    int
	// Reason is a machine readable code for 422 responses
	Reason string
}

func (e *AppError) Error() string {
	return e.Message
}

// Auth errors
var (
	ErrInvalidCredentials = &AppError{
		Message: "invalid email or password",
		Code:    401, // StatusUnauthorized
	}
	ErrUserInactive = &AppError{
		Message: "user is inactive",
		Code:    403, // StatusForbidden
	}
	ErrInvalidRefreshToken = &AppError{
		Message: "invalid or expired refresh token",
		Code:    401, // StatusUnauthorized
	}
	ErrEmailAlreadyExists = &AppError{
		Message: "user with this email already exists",
		Code:    409, // StatusConflict
	}
	ErrPhoneAlreadyExists = &AppError{
		Message: "user with this phone already exists",
		Code:    409, // StatusConflict
	}
	ErrUserNotFound = &AppError{
		Message: "user not found",
		Code:    404, // StatusNotFound
	}
	ErrUnauthenticated = &AppError{
		Message: "authentication required",
		Code:    401, // StatusUnauthorized
	}
	ErrRoleNotFound = &AppError{
		Message: "role not found",
		Code:    400, // StatusBadRequest
	}
)

// Catalog errors
var (
	ErrSupplierNotFound = &AppError{
		Message: "supplier not found",
		Code:    404, // StatusNotFound
	}
	ErrSupplierCodeAlreadyExists = &AppError{
		Message: "supplier with this code already exists",
		Code:    409, // StatusConflict
	}
	ErrSupplierInUse = &AppError{
		Message: "supplier still has products",
		Code:    409, // StatusConflict
	}
	ErrSupplierProductInUse = &AppError{
		Message: "supplier product is used by a recipe",
		Code:    409, // StatusConflict
	}
	ErrProductInUse = &AppError{
		Message: "product has transactions",
		Code:    409, // StatusConflict
	}
	ErrSupplierProductNotFound = &AppError{
		Message: "supplier product not found",
		Code:    404, // StatusNotFound
	}
	ErrSupplierProductAlreadyExists = &AppError{
		Message: "supplier product with this key already exists for the supplier",
		Code:    409, // StatusConflict
	}
	ErrProductNotFound = &AppError{
		Message: "product not found",
		Code:    404, // StatusNotFound
	}
	ErrRecipeItemNotFound = &AppError{
		Message: "recipe item not found",
		Code:    404, // StatusNotFound
	}
	ErrInvalidQuantity = &AppError{
		Message: "quantity must be a positive integer",
		Code:    400, // StatusBadRequest
	}
	ErrCrossSupplierRecipe = &AppError{
		Message: "recipe items must belong to the product's supplier",
		Code:    422, // StatusUnprocessableEntity
		Reason:  "CROSS_SUPPLIER_RECIPE",
	}
	ErrRecipeItemsRequired = &AppError{
		Message: "at least one recipe item is required",
		Code:    400, // StatusBadRequest
	}
	ErrInvalidID = &AppError{
		Message: "invalid id",
		Code:    400, // StatusBadRequest
	}
)

// Order errors
var (
	ErrInvalidAPIKey = &AppError{
		Message: "invalid api key",
		Code:    401, // StatusUnauthorized
	}
	ErrProductSupplierMismatch = &AppError{
		Message: "product does not belong to the supplier",
		Code:    400, // StatusBadRequest
	}
	ErrProductInactive = &AppError{
		Message: "product is inactive",
		Code:    422, // StatusUnprocessableEntity
		Reason:  "PRODUCT_INACTIVE",
	}
	ErrEmptyRecipe = &AppError{
		Message: "product has no recipe",
		Code:    422, // StatusUnprocessableEntity
		Reason:  "EMPTY_RECIPE",
	}
	ErrRefIDConflict = &AppError{
		Message: "ref_id already used for a different order",
		Code:    409, // StatusConflict
	}
)

// Standard error types for repositories
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("foreign key violation")
	ErrCacheMiss    = errors.New("cache miss")
)
