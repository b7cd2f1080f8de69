package keeper

import (
	"cosmossdk.io/math"

	"github.com/stableswap/stableswap/x/stableswap/types"
)

// fakeLedger is a minimal in-memory types.Ledger used only by this
// package's tests: a nested balance map plus a durable-holder set.
type fakeLedger struct {
	balances map[string]map[string]math.Int
	holders  map[string]bool
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		balances: make(map[string]map[string]math.Int),
		holders:  make(map[string]bool),
	}
}

func (l *fakeLedger) bal(asset, account string) math.Int {
	accts, ok := l.balances[asset]
	if !ok {
		return math.ZeroInt()
	}
	v, ok := accts[account]
	if !ok {
		return math.ZeroInt()
	}
	return v
}

func (l *fakeLedger) setBal(asset, account string, v math.Int) {
	if _, ok := l.balances[asset]; !ok {
		l.balances[asset] = make(map[string]math.Int)
	}
	l.balances[asset][account] = v
}

func (l *fakeLedger) Balance(asset string, account string) math.Int {
	return l.bal(asset, account)
}

func (l *fakeLedger) MintInto(asset string, account string, amount math.Int) error {
	l.setBal(asset, account, l.bal(asset, account).Add(amount))
	return nil
}

func (l *fakeLedger) BurnFrom(asset string, account string, amount math.Int) (math.Int, error) {
	current := l.bal(asset, account)
	if current.LT(amount) {
		return math.Int{}, types.ErrLedgerFailure.Wrap("insufficient balance to burn")
	}
	newBal := current.Sub(amount)
	l.setBal(asset, account, newBal)
	return newBal, nil
}

func (l *fakeLedger) Transfer(asset string, from string, to string, amount math.Int, keepAlive bool) error {
	current := l.bal(asset, from)
	if current.LT(amount) {
		return types.ErrLedgerFailure.Wrap("insufficient balance to transfer")
	}
	l.setBal(asset, from, current.Sub(amount))
	l.setBal(asset, to, l.bal(asset, to).Add(amount))
	return nil
}

func (l *fakeLedger) MarkDurableHolder(account string) error {
	l.holders[account] = true
	return nil
}

// fakeAuthorizer treats a single fixed origin as admin and otherwise
// resolves any origin string directly to an identically-named account.
type fakeAuthorizer struct {
	admin string
}

func (a fakeAuthorizer) IsAdmin(origin string) bool {
	return origin == a.admin
}

func (a fakeAuthorizer) SignedAccount(origin string) (string, error) {
	if origin == "" {
		return "", types.ErrUnauthorized.Wrap("empty origin")
	}
	return origin, nil
}

// fakeEventSink records every emitted event for test assertions.
type fakeEventSink struct {
	events []fakeEvent
}

type fakeEvent struct {
	Type  string
	Attrs map[string]string
}

func (s *fakeEventSink) EmitEvent(eventType string, attributes map[string]string) {
	s.events = append(s.events, fakeEvent{Type: eventType, Attrs: attributes})
}
