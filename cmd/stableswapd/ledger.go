package main

import (
	"cosmossdk.io/math"

	"github.com/stableswap/stableswap/x/stableswap/types"
)

// fileLedger is the types.Ledger implementation this standalone command
// wires to the keeper: every call mutates the in-process appState, which
// the caller is responsible for persisting back to disk afterward.
type fileLedger struct {
	state *appState
}

func (l fileLedger) Balance(asset string, account string) math.Int {
	return l.state.ledgerBalance(asset, account)
}

func (l fileLedger) MintInto(asset string, account string, amount math.Int) error {
	l.state.setLedgerBalance(asset, account, l.state.ledgerBalance(asset, account).Add(amount))
	return nil
}

func (l fileLedger) BurnFrom(asset string, account string, amount math.Int) (math.Int, error) {
	current := l.state.ledgerBalance(asset, account)
	if current.LT(amount) {
		return math.Int{}, types.ErrLedgerFailure.Wrapf("insufficient %s balance for %s: have %s, need %s", asset, account, current, amount)
	}
	newBal := current.Sub(amount)
	l.state.setLedgerBalance(asset, account, newBal)
	return newBal, nil
}

func (l fileLedger) Transfer(asset string, from string, to string, amount math.Int, keepAlive bool) error {
	current := l.state.ledgerBalance(asset, from)
	if current.LT(amount) {
		return types.ErrLedgerFailure.Wrapf("insufficient %s balance for %s: have %s, need %s", asset, from, current, amount)
	}
	l.state.setLedgerBalance(asset, from, current.Sub(amount))
	l.state.setLedgerBalance(asset, to, l.state.ledgerBalance(asset, to).Add(amount))
	return nil
}

func (l fileLedger) MarkDurableHolder(account string) error {
	for _, h := range l.state.DurableHolders {
		if h == account {
			return nil
		}
	}
	l.state.DurableHolders = append(l.state.DurableHolders, account)
	return nil
}

// cliAuthorizer treats a single configured admin string as the admin
// origin and resolves every other origin directly to its own account id
// — there is no signature verification in this standalone shell.
type cliAuthorizer struct {
	admin string
}

func (a cliAuthorizer) IsAdmin(origin string) bool {
	return origin == a.admin
}

func (a cliAuthorizer) SignedAccount(origin string) (string, error) {
	if origin == "" {
		return "", types.ErrUnauthorized.Wrap("empty origin")
	}
	return origin, nil
}

// stdoutEventSink prints every emitted event to stdout as it's produced.
type stdoutEventSink struct {
	logger interface {
		Info(msg string, keyvals ...interface{})
	}
}

func (s stdoutEventSink) EmitEvent(eventType string, attributes map[string]string) {
	kvs := make([]interface{}, 0, len(attributes)*2)
	for k, v := range attributes {
		kvs = append(kvs, k, v)
	}
	s.logger.Info(eventType, kvs...)
}
