package model

import "errors"

// ErrNotFound is the repository-level sentinel for a missing row.
// Services translate it into a client-facing *Error.
var ErrNotFound = errors.New("not found")

// ErrInvalidToken covers every token verification failure: malformed,
// bad signature or expired. Callers must not distinguish these at the
// transport boundary.
var ErrInvalidToken = errors.New("invalid token")

// Kind classifies a client-facing failure. The set is closed: every
// error surfaced to a client carries exactly one of these kinds, and the
// HTTP status mapping lives in a single place in the handler package.
type Kind int

const (
	KindBadRequest Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Error is a classified client-facing failure. Message is the exact text
// returned to the client; underlying store or crypto details never reach
// it.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewErrInvalidUserData() *Error {
	return &Error{Kind: KindBadRequest, Message: "Переданы некорректные данные при создании пользователя"}
}

func NewErrInvalidUserID() *Error {
	return &Error{Kind: KindBadRequest, Message: "Переданы некорректные данные при поиске пользователя"}
}

func NewErrInvalidProfileData() *Error {
	return &Error{Kind: KindBadRequest, Message: "Переданы некорректные данные при обновлении профиля"}
}

func NewErrInvalidAvatarData() *Error {
	return &Error{Kind: KindBadRequest, Message: "Переданы некорректные данные при обновлении аватара"}
}

func NewErrUserNotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "Пользователь по указанному _id не найден"}
}

func NewErrEmailIsTaken() *Error {
	return &Error{Kind: KindConflict, Message: "Пользователь с таким email уже существует"}
}

func NewErrWrongCredentials() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Неверный логин или пароль"}
}

func NewErrUnauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Ошибка авторизации"}
}

func NewErrInvalidCardData() *Error {
	return &Error{Kind: KindBadRequest, Message: "Переданы некорректные данные при создании карточки"}
}

func NewErrInvalidDeleteCardID() *Error {
	return &Error{Kind: KindBadRequest, Message: "Переданы некорректные данные при удалении карточки"}
}

func NewErrInvalidLikeCardID() *Error {
	return &Error{Kind: KindBadRequest, Message: "Переданы некорректные данные при постановке лайка"}
}

func NewErrInvalidDislikeCardID() *Error {
	return &Error{Kind: KindBadRequest, Message: "Переданы некорректные данные при снятии лайка"}
}

func NewErrCardNotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "Передан несуществующий _id карточки"}
}

func NewErrCardAccessDenied() *Error {
	return &Error{Kind: KindForbidden, Message: "Нет доступа к запрашиваемой карточке"}
}

func NewErrPageNotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "Запрашиваемая страница не найдена"}
}

func NewErrInternal() *Error {
	return &Error{Kind: KindInternal, Message: "Произошла ошибка сервера"}
}
