package predeploys

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/selendra/selendra/helper/hex"
	"github.com/selendra/selendra/types"
)

var (
	ErrEmptyName     = errors.New("empty name")
	ErrDuplicateName = errors.New("duplicate name")
	ErrBadLiteral    = errors.New("address literal is not 0x followed by 40 hex digits")
)

// literalLength is "0x" plus two hex digits per address byte
const literalLength = len(hex.HexPrefix) + types.AddressLength*2

// validate checks every declared literal and returns all problems found
func validate(decl []Entry) error {
	var result error

	seen := make(map[Name]struct{}, len(decl))

	for _, e := range decl {
		if e.Name == "" {
			result = multierror.Append(result, fmt.Errorf("%w for %s", ErrEmptyName, e.Hex))

			continue
		}

		if _, ok := seen[e.Name]; ok {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrDuplicateName, e.Name))
		}

		seen[e.Name] = struct{}{}

		if err := checkLiteral(e.Hex); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", e.Name, err))
		}
	}

	return result
}

func checkLiteral(lit string) error {
	if len(lit) != literalLength ||
		lit[:len(hex.HexPrefix)] != hex.HexPrefix ||
		!hex.IsHex(lit[len(hex.HexPrefix):]) {
		return fmt.Errorf("%w: %q", ErrBadLiteral, lit)
	}

	if _, err := types.ParseAddress(lit); err != nil {
		return err
	}

	return nil
}
