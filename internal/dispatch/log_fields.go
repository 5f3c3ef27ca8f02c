package dispatch

import (
	"errors"

	"go.uber.org/zap"
)

func keyFields(key Key) []zap.Field {
	return []zap.Field{
		zap.Int("opcode", key.Opcode),
		zap.Int("subopcode", key.Subopcode),
	}
}

func errorFields(err error) []zap.Field {
	var unknown *UnknownPairError
	var mismatch *SignatureMismatchError

	switch {
	case errors.As(err, &unknown):
		return append(keyFields(unknown.Key),
			zap.String("params", unknown.Params),
			zap.String("reason", "pair_not_found"),
		)
	case errors.As(err, &mismatch):
		return append(keyFields(mismatch.Key),
			zap.String("params", mismatch.Params),
			zap.String("reason", "signature_mismatch"),
			zap.Stringer("called", mismatch.Passed),
			zap.String("passed_types", mismatch.PassedTypes),
			zap.Strings("expected", mismatch.expectedNames()),
		)
	default:
		return []zap.Field{zap.Error(err)}
	}
}
