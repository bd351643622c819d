package slotcache

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации слотов
	ErrEncode = errors.New("slotcache: failed to encode slots")

	// ErrDecode возвращается при ошибке десериализации слотов
	ErrDecode = errors.New("slotcache: failed to decode slots")
)
