package navlog

import (
	"strconv"

	"github.com/Rhymond/go-money"
)

// Price is a reference price in whole yen.
type Price int64

// String returns the bare integer, as written in the history file.
func (p Price) String() string { return strconv.FormatInt(int64(p), 10) }

// Display returns the price formatted in yen, e.g. "¥9,876".
func (p Price) Display() string { return money.New(int64(p), money.JPY).Display() }
