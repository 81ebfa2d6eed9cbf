//go:build js || wasip1

package hasher

import "HashBench/errutil"

const keyedSupported = false

func newKeyed(kind Kind, _ Params) (Hasher, error) {
	return nil, &errutil.ConfigError{Field: "hasher", Value: kind.String(), Err: ErrUnavailable}
}
