package intparse

import "github.com/zeebo/errs"

// Error is the class of every error returned by this package.
var Error = errs.Class("intparse")
