package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/selendra/selendra/helper/hex"
	"github.com/selendra/selendra/helper/keccak"
)

var ZeroAddress = Address{}

const (
	AddressLength = 20
)

var (
	ErrInvalidHexPrefix     = errors.New("address must start with 0x")
	ErrInvalidAddressLength = fmt.Errorf("address must be %d hex characters", AddressLength*2)
)

type Address [AddressLength]byte

var runePool = sync.Pool{
	New: func() interface{} {
		result := make([]rune, 0, AddressLength*2)

		return &result
	},
}

// checksumEncode returns the checksummed address with 0x prefix, as by EIP-55
// https://github.com/ethereum/EIPs/blob/master/EIPS/eip-55.md
func (a Address) checksumEncode() string {
	lowercaseHex := hex.EncodeToString(a.Bytes())
	hashedAddress := hex.EncodeToString(keccak.Keccak256(nil, []byte(lowercaseHex)))

	resultPtr, ok := runePool.Get().(*[]rune)
	if !ok {
		result := make([]rune, 0, AddressLength*2)
		resultPtr = &result
	}

	defer func() {
		*resultPtr = (*resultPtr)[:0]
		runePool.Put(resultPtr)
	}()

	result := (*resultPtr)[:len(lowercaseHex)]

	for idx, ch := range lowercaseHex {
		if ch >= '0' && ch <= '9' || hashedAddress[idx] >= '0' && hashedAddress[idx] <= '7' {
			// digits and hash nibbles in [0, 7] stay lowercase
			result[idx] = ch
		} else {
			result[idx] = unicode.ToUpper(ch)
		}
	}

	builder := new(strings.Builder)
	builder.Grow(len(hex.HexPrefix) + len(result))
	builder.WriteString(hex.HexPrefix)
	builder.WriteString(string(result))

	return builder.String()
}

func (a Address) Ptr() *Address {
	return &a
}

// String returns the EIP-55 checksummed form
func (a Address) String() string {
	return a.checksumEncode()
}

// Hex returns the lowercase 0x-prefixed form
func (a Address) Hex() string {
	return hex.EncodeToHex(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) Value() (driver.Value, error) {
	return a.String(), nil
}

func (a *Address) Scan(src interface{}) error {
	var stringVal string

	switch v := src.(type) {
	case []byte:
		stringVal = string(v)
	case string:
		stringVal = v
	default:
		return errors.New("invalid type assert")
	}

	aa, err := hex.DecodeHex(stringVal)
	if err != nil {
		return fmt.Errorf("decode hex err: %w", err)
	}

	*a = BytesToAddress(aa)

	return nil
}

// ParseAddress strictly parses a 0x-prefixed, 40 hex digit address.
// Use StringToAddress for lenient conversion of short or padded input.
func ParseAddress(str string) (Address, error) {
	if !hex.Has0xPrefix(str) {
		return ZeroAddress, ErrInvalidHexPrefix
	}

	digits := str[len(hex.HexPrefix):]
	if len(digits) != AddressLength*2 {
		return ZeroAddress, fmt.Errorf("%w, got %d", ErrInvalidAddressLength, len(digits))
	}

	buf, err := hex.DecodeString(digits)
	if err != nil {
		return ZeroAddress, fmt.Errorf("decode hex err: %w", err)
	}

	return BytesToAddress(buf), nil
}

// StringToBytes decodes a hex string with an optional 0x prefix,
// left padding odd-length input. Invalid input yields an empty slice.
func StringToBytes(str string) []byte {
	str = strings.TrimPrefix(strings.TrimPrefix(str, "0X"), hex.HexPrefix)
	if len(str)%2 == 1 {
		str = "0" + str
	}

	b, err := hex.DecodeString(str)
	if err != nil {
		return []byte{}
	}

	return b
}

func StringToAddress(str string) Address {
	return BytesToAddress(StringToBytes(str))
}

func BytesToAddress(b []byte) Address {
	var a Address

	size := min(len(b), AddressLength)

	copy(a[AddressLength-size:], b[len(b)-size:])

	return a
}

// UnmarshalText parses an address in hex syntax.
func (a *Address) UnmarshalText(input []byte) error {
	buf := StringToBytes(string(input))
	if len(buf) != AddressLength {
		return fmt.Errorf("incorrect length")
	}

	*a = BytesToAddress(buf)

	return nil
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ImplementsGraphQLType returns true if Address implements the specified GraphQL type.
func (a Address) ImplementsGraphQLType(name string) bool { return name == "Address" }

// UnmarshalGraphQL unmarshals the provided GraphQL query data.
func (a *Address) UnmarshalGraphQL(input interface{}) error {
	var err error

	switch input := input.(type) {
	case string:
		err = a.UnmarshalText([]byte(input))
	default:
		err = fmt.Errorf("unexpected type %T for Address", input)
	}

	return err
}
