package impact

import "errors"

var ErrInvalidCustomerID = errors.New("invalid customer id")
