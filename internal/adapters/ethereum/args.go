package ethereum

import (
	"math/big"
	"reflect"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.trai.ch/landdeploy/internal/core/domain"
	"go.trai.ch/zerr"
)

// convertArgs turns string constructor arguments into the Go values abi.Pack expects.
func convertArgs(inputs abi.Arguments, args []string) ([]any, error) {
	if len(inputs) != len(args) {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConstructorArgs, "wrong number of constructor arguments"),
			"expected", len(inputs)), "got", len(args))
	}

	out := make([]any, len(args))
	for i, input := range inputs {
		v, err := convertArg(input.Type, args[i])
		if err != nil {
			return nil, zerr.With(zerr.With(zerr.Wrap(err, "cannot convert constructor argument"),
				"index", i), "type", input.Type.String())
		}
		out[i] = v
	}
	return out, nil
}

func convertArg(typ abi.Type, s string) (any, error) {
	switch typ.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, zerr.Wrap(domain.ErrConstructorArgs, "not a hex address")
		}
		return common.HexToAddress(s), nil

	case abi.StringTy:
		return s, nil

	case abi.BoolTy:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, zerr.Wrap(domain.ErrConstructorArgs, "not a boolean")
		}
		return b, nil

	case abi.IntTy, abi.UintTy:
		return convertInteger(typ, s)

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(s)
		if err != nil || len(b) != typ.Size {
			return nil, zerr.Wrap(domain.ErrConstructorArgs, "not a fixed-size hex byte string")
		}
		arr := reflect.New(typ.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil

	case abi.BytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, zerr.Wrap(domain.ErrConstructorArgs, "not a hex byte string")
		}
		return b, nil

	default:
		return nil, zerr.Wrap(domain.ErrConstructorArgs, "unsupported constructor argument type")
	}
}

func convertInteger(typ abi.Type, s string) (any, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, zerr.Wrap(domain.ErrConstructorArgs, "not an integer")
	}

	signed := typ.T == abi.IntTy
	if !signed && n.Sign() < 0 {
		return nil, zerr.Wrap(domain.ErrConstructorArgs, "negative value for unsigned integer")
	}
	// Signed values lose one bit to the sign, and -2^(n-1) is still in range.
	limit, mag := typ.Size, n
	if signed {
		limit--
		if n.Sign() < 0 {
			mag = new(big.Int).Not(n)
		}
	}
	if mag.BitLen() > limit {
		return nil, zerr.Wrap(domain.ErrConstructorArgs, "integer overflows type")
	}

	switch typ.Size {
	case 8, 16, 32, 64:
		v := reflect.New(typ.GetType()).Elem()
		if signed {
			v.SetInt(n.Int64())
		} else {
			v.SetUint(n.Uint64())
		}
		return v.Interface(), nil
	default:
		return n, nil
	}
}
