package payments

import "errors"

var (
	// ErrDuplicateReview возвращается при попытке оставить второй отзыв на запись
	ErrDuplicateReview = errors.New("payments.repository: review already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("payments.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("payments.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("payments.repository: failed to scan row")
)
