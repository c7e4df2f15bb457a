package executors

// Reconciliation of ledger records against remote YNAB transactions. The
// matching itself is pure and stateless; the stateful parts (HTTP calls,
// ledger access) stay on *Executor.

import (
	"fmt"

	"github.com/brunomvsouza/ynab.go/api"
	"github.com/brunomvsouza/ynab.go/api/transaction"
	"github.com/shopspring/decimal"

	"github.com/yurifrl/fintrack/pkg/models"
	"github.com/yurifrl/fintrack/pkg/ynab"
)

// Status indicates the reconciliation result for a ledger record.
//
//   - Synced: already present remotely.
//   - ToAdd:  missing, needs to be created.
type Status int

const (
	Synced Status = iota
	ToAdd
)

// Entry links a ledger record with its remote counterpart (if any) and
// records the reconciliation status.
type Entry struct {
	Local  models.Record
	Remote *ynab.Transaction // nil when status == ToAdd
	Status Status
}

// Report is the reconciled data structure returned by BuildReport.
type Report struct {
	Items  []Entry
	toSync []models.Record
}

// BuildReport matches ledger records against remote transactions. Matching is
// done via the memo-encoded identity or, when useCustomID is false, via
// amount/payee/date heuristics.
func BuildReport(local []models.Record, remote []*ynab.Transaction, useCustomID bool) *Report {
	items := make([]Entry, 0, len(local))
	toSync := make([]models.Record, 0)

	if useCustomID {
		idx := make(map[string]*ynab.Transaction, len(remote))
		for _, rt := range remote {
			idx[rt.CustomID()] = rt
		}
		for _, lt := range local {
			found := idx[lt.ID()]
			status := ToAdd
			if found != nil {
				status = Synced
			}
			items = append(items, Entry{Local: lt, Remote: found, Status: status})
			if status == ToAdd {
				toSync = append(toSync, lt)
			}
		}
	} else {
		// Slower but resilient when the remote memo lost the identity.
		idx := make(map[string]*ynab.Transaction, len(remote))
		for _, rt := range remote {
			key := remoteKey(rt)
			if _, ok := idx[key]; !ok {
				idx[key] = rt
			}
		}
		for _, lt := range local {
			found := idx[localKey(lt)]
			if found != nil && !equal(lt, found) {
				found = nil
			}
			status := ToAdd
			if found != nil {
				status = Synced
			}
			items = append(items, Entry{Local: lt, Remote: found, Status: status})
			if status == ToAdd {
				toSync = append(toSync, lt)
			}
		}
	}

	return &Report{Items: items, toSync: toSync}
}

// signedAmount returns the record amount with the ledger sign convention
// mapped onto YNAB's: expenses are negative.
func signedAmount(r models.Record) decimal.Decimal {
	if r.Category == models.CategoryExpense {
		return r.Amount.Neg()
	}
	return r.Amount
}

// milliunits converts the record amount into YNAB milliunits.
func milliunits(r models.Record) int64 {
	return signedAmount(r).Shift(3).IntPart()
}

func remoteAmountString(rt *ynab.Transaction) string {
	return decimal.New(rt.Amount, -3).StringFixed(2)
}

func localKey(r models.Record) string {
	return fmt.Sprintf("%s|%s|%s", signedAmount(r).StringFixed(2), r.Description, r.Date)
}

func remoteKey(rt *ynab.Transaction) string {
	payee := ""
	if rt.PayeeName != nil {
		payee = *rt.PayeeName
	}
	return fmt.Sprintf("%s|%s|%s", remoteAmountString(rt), payee, rt.Date.Format("2006-01-02"))
}

// equal checks whether a record and a remote transaction actually match.
func equal(local models.Record, remote *ynab.Transaction) bool {
	if remote == nil {
		return false
	}
	if signedAmount(local).StringFixed(2) != remoteAmountString(remote) {
		return false
	}
	if remote.PayeeName == nil || local.Description != *remote.PayeeName {
		return false
	}
	return local.Date == remote.Date.Format("2006-01-02")
}

// InSyncCount returns how many ledger records already exist remotely.
func (r *Report) InSyncCount() int {
	return len(r.Items) - len(r.toSync)
}

// MissingCount returns how many ledger records still need to be created.
func (r *Report) MissingCount() int {
	return len(r.toSync)
}

// RecordsToSync returns the subset of ledger records missing remotely.
func (r *Report) RecordsToSync() []models.Record {
	return r.toSync
}

// Payloads converts the records that still need syncing into YNAB API payloads.
func (r *Report) Payloads(accountID string) ([]transaction.PayloadTransaction, error) {
	out := make([]transaction.PayloadTransaction, 0, len(r.toSync))
	for _, lt := range r.toSync {
		dateVal, err := api.DateFromString(lt.Date)
		if err != nil {
			return nil, fmt.Errorf("record %s has unusable date: %w", lt.ID(), err)
		}

		memo := fmt.Sprintf("%s,fintrack,-", lt.ID())
		var payee *string
		if lt.Description != "" {
			payee = &lt.Description
		}

		out = append(out, transaction.PayloadTransaction{
			AccountID: accountID,
			Date:      dateVal,
			Amount:    milliunits(lt),
			Cleared:   transaction.ClearingStatusCleared,
			Approved:  true,
			PayeeName: payee,
			Memo:      &memo,
		})
	}
	return out, nil
}
