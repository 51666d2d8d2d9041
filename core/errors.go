package core

import "errors"

// ErrUnsupportedOpcode is returned, wrapped with the faulting PC and
// opcode, when the fetch-execute loop decodes opcode 8 (RTI) or 13
// (reserved). Callers distinguish it from other failures with
// errors.Is.
var ErrUnsupportedOpcode = errors.New("unsupported opcode")
