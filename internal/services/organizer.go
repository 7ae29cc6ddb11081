package services

import (
	"errors"

	"github.com/mimi0225/yourcalendar/internal/models"
	"github.com/mimi0225/yourcalendar/internal/storage"
	"github.com/mimi0225/yourcalendar/internal/store"
)

var (
	ErrNotFound      = store.ErrNotFound
	ErrCategoryInUse = errors.New("budget category has transactions")
	ErrTeamNotFound  = errors.New("sport team not found")
	ErrClassNotFound = errors.New("class not found")
)

// CascadeAction is what happens to dependents when a parent record is
// removed.
type CascadeAction int

const (
	// CascadeDelete removes every dependent along with the parent.
	CascadeDelete CascadeAction = iota
	// RefuseIfInUse rejects the removal while dependents exist.
	RefuseIfInUse
	// ClearReference keeps dependents but blanks their foreign key.
	ClearReference
)

// CascadeRule names one parent/dependent relationship and its policy.
// Refusal is the error returned when Action is RefuseIfInUse and
// dependents exist. The table is enforced by Organizer.Cascade; the
// owning services never touch dependent collections directly.
type CascadeRule struct {
	Parent    string
	Dependent string
	Action    CascadeAction
	Refusal   error
}

func CascadeRules() []CascadeRule {
	return []CascadeRule{
		{Parent: storage.NamespaceClasses, Dependent: storage.NamespaceAssignments, Action: CascadeDelete},
		{Parent: storage.NamespaceClasses, Dependent: storage.NamespaceTests, Action: CascadeDelete},
		{Parent: storage.NamespaceClasses, Dependent: storage.NamespaceProjects, Action: CascadeDelete},
		{Parent: storage.NamespaceSportTeams, Dependent: storage.NamespaceSportEvents, Action: CascadeDelete},
		{Parent: storage.NamespaceBudgetCategories, Dependent: storage.NamespaceTransactions, Action: RefuseIfInUse, Refusal: ErrCategoryInUse},
		{Parent: storage.NamespaceCards, Dependent: storage.NamespaceTransactions, Action: ClearReference},
		{Parent: storage.NamespaceSavingsAccounts, Dependent: storage.NamespaceSavingsTransactions, Action: CascadeDelete},
	}
}

// Organizer owns one collection per tracked namespace. It is built
// once per process and handed to the domain services and handlers by
// reference; nothing reaches it through package state.
type Organizer struct {
	Events              *store.Collection[models.CalendarEvent, *models.CalendarEvent]
	Classes             *store.Collection[models.Class, *models.Class]
	Assignments         *store.Collection[models.WorkItem, *models.WorkItem]
	Tests               *store.Collection[models.WorkItem, *models.WorkItem]
	Projects            *store.Collection[models.WorkItem, *models.WorkItem]
	PeriodEntries       *store.Collection[models.PeriodEntry, *models.PeriodEntry]
	SportTeams          *store.Collection[models.SportTeam, *models.SportTeam]
	SportEvents         *store.Collection[models.SportEvent, *models.SportEvent]
	Chores              *store.Collection[models.Chore, *models.Chore]
	Transactions        *store.Collection[models.Transaction, *models.Transaction]
	Categories          *store.Collection[models.BudgetCategory, *models.BudgetCategory]
	SavingsAccounts     *store.Collection[models.SavingsAccount, *models.SavingsAccount]
	SavingsTransactions *store.Collection[models.SavingsTransaction, *models.SavingsTransaction]
	Cards               *store.Collection[models.Card, *models.Card]
	Cycle               *store.Singleton[models.CycleData]
	Tabs                *store.Singleton[models.TabSettings]
}

func NewOrganizer(st storage.Store, newID store.IDSource) *Organizer {
	return &Organizer{
		Events:              store.NewCollection[models.CalendarEvent](storage.NamespaceEvents, st, newID, SeedEvents),
		Classes:             store.NewCollection[models.Class](storage.NamespaceClasses, st, newID, nil),
		Assignments:         store.NewCollection[models.WorkItem](storage.NamespaceAssignments, st, newID, nil),
		Tests:               store.NewCollection[models.WorkItem](storage.NamespaceTests, st, newID, nil),
		Projects:            store.NewCollection[models.WorkItem](storage.NamespaceProjects, st, newID, nil),
		PeriodEntries:       store.NewCollection[models.PeriodEntry](storage.NamespacePeriodEntries, st, newID, nil),
		SportTeams:          store.NewCollection[models.SportTeam](storage.NamespaceSportTeams, st, newID, nil),
		SportEvents:         store.NewCollection[models.SportEvent](storage.NamespaceSportEvents, st, newID, nil),
		Chores:              store.NewCollection[models.Chore](storage.NamespaceChores, st, newID, SeedChores),
		Transactions:        store.NewCollection[models.Transaction](storage.NamespaceTransactions, st, newID, nil),
		Categories:          store.NewCollection[models.BudgetCategory](storage.NamespaceBudgetCategories, st, newID, SeedCategories),
		SavingsAccounts:     store.NewCollection[models.SavingsAccount](storage.NamespaceSavingsAccounts, st, newID, nil),
		SavingsTransactions: store.NewCollection[models.SavingsTransaction](storage.NamespaceSavingsTransactions, st, newID, nil),
		Cards:               store.NewCollection[models.Card](storage.NamespaceCards, st, newID, nil),
		Cycle:               store.NewSingleton(storage.NamespaceCycleData, st, models.DefaultCycleData),
		Tabs:                store.NewSingleton(storage.NamespaceTabSettings, st, models.DefaultTabSettings),
	}
}

type cascadeKey struct {
	parent    string
	dependent string
}

// cascadeTarget is how the cascade runner touches one dependent
// collection without knowing its record type.
type cascadeTarget struct {
	references func(parentID string) bool
	remove     func(parentID string)
	clear      func(parentID string)
}

func newCascadeTarget[T any, PT interface {
	*T
	models.Identified
}](collection *store.Collection[T, PT], foreignKey func(T) string, clearKey func(*T)) cascadeTarget {
	return cascadeTarget{
		references: func(parentID string) bool {
			for _, record := range collection.All() {
				if foreignKey(record) == parentID {
					return true
				}
			}
			return false
		},
		remove: func(parentID string) {
			kept := make([]T, 0)
			for _, record := range collection.All() {
				if foreignKey(record) != parentID {
					kept = append(kept, record)
				}
			}
			collection.Replace(kept)
		},
		clear: func(parentID string) {
			if clearKey == nil {
				return
			}
			records := collection.All()
			for i := range records {
				if foreignKey(records[i]) == parentID {
					clearKey(&records[i])
				}
			}
			collection.Replace(records)
		},
	}
}

func (organizer *Organizer) cascadeTargets() map[cascadeKey]cascadeTarget {
	workClass := func(item models.WorkItem) string { return item.ClassID }
	return map[cascadeKey]cascadeTarget{
		{storage.NamespaceClasses, storage.NamespaceAssignments}: newCascadeTarget(organizer.Assignments, workClass, nil),
		{storage.NamespaceClasses, storage.NamespaceTests}:       newCascadeTarget(organizer.Tests, workClass, nil),
		{storage.NamespaceClasses, storage.NamespaceProjects}:    newCascadeTarget(organizer.Projects, workClass, nil),
		{storage.NamespaceSportTeams, storage.NamespaceSportEvents}: newCascadeTarget(organizer.SportEvents,
			func(event models.SportEvent) string { return event.TeamID }, nil),
		{storage.NamespaceBudgetCategories, storage.NamespaceTransactions}: newCascadeTarget(organizer.Transactions,
			func(transaction models.Transaction) string { return transaction.CategoryID }, nil),
		{storage.NamespaceCards, storage.NamespaceTransactions}: newCascadeTarget(organizer.Transactions,
			func(transaction models.Transaction) string { return transaction.CardID },
			func(transaction *models.Transaction) { transaction.CardID = "" }),
		{storage.NamespaceSavingsAccounts, storage.NamespaceSavingsTransactions}: newCascadeTarget(organizer.SavingsTransactions,
			func(entry models.SavingsTransaction) string { return entry.AccountID }, nil),
	}
}

// Cascade applies the policy table before the parent record under
// parentNamespace is removed. Refusing rules are checked first, so a
// refused removal leaves every dependent collection untouched.
func (organizer *Organizer) Cascade(parentNamespace, parentID string) error {
	targets := organizer.cascadeTargets()

	for _, rule := range CascadeRules() {
		if rule.Parent != parentNamespace || rule.Action != RefuseIfInUse {
			continue
		}
		if targets[cascadeKey{rule.Parent, rule.Dependent}].references(parentID) {
			return rule.Refusal
		}
	}

	for _, rule := range CascadeRules() {
		if rule.Parent != parentNamespace {
			continue
		}
		target := targets[cascadeKey{rule.Parent, rule.Dependent}]
		switch rule.Action {
		case CascadeDelete:
			target.remove(parentID)
		case ClearReference:
			target.clear(parentID)
		}
	}
	return nil
}
