package serverutils

type ApiResponse[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Status:  200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(status int, message string) ApiResponse[any] {
	return ApiResponse[any]{
		Status:  status,
		Message: message,
	}
}
