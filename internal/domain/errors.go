package domain

import "errors"

// Таксономия ошибок подсистемы (§7 дизайна):
// per-identifier сбои гасятся на границе резолвера и наружу не выходят,
// сбои уровня ranking-сервиса доходят до оркестратора.
var (
	// ErrResolutionFailed — ranking-сервис недоступен или ответил ошибкой;
	// запись в кэш не фиксируется.
	ErrResolutionFailed = errors.New("recommendation resolution failed")

	// ErrLookupFailed — один идентификатор не разрешился в каталоге;
	// молча выпадает из итоговой последовательности.
	ErrLookupFailed = errors.New("catalog lookup failed")

	// ErrReplacementFailed — мутация корзины завершилась ошибкой;
	// кэш рекомендаций не трогаем, пользователь может повторить.
	ErrReplacementFailed = errors.New("cart line replacement failed")

	// ErrReplaceInFlight — для этой позиции уже идёт замена.
	ErrReplaceInFlight = errors.New("replacement already in flight")

	// ErrLineNotFound — позиция корзины не известна менеджеру рекомендаций.
	ErrLineNotFound = errors.New("cart line not found")
)
