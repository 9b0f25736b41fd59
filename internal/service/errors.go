package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrStoreUpload = errors.New("failed to store uploaded photo")
	ErrSendText    = errors.New("failed to send submission text")
	ErrSendPhoto   = errors.New("failed to send submission photo")
)
