package appError

import (
	"fmt"

	"rwa-adapter/utility/errorcode"
)

// Err ... Application error with code and classification
type Err struct {
	ErrCode int
	ErrType string
	Err     error
	ErrData interface{}
}

func (e Err) Error() string {
	return fmt.Sprintf("%s", e.Err)
}

// IsNotFound ... Reports whether err is a missing-record application error
func IsNotFound(err error) bool {
	appErr, ok := err.(Err)
	if !ok {
		return false
	}
	return appErr.ErrType == errorcode.RECORD_NOT_FOUND
}
