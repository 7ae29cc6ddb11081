// Package storage persists whole namespaces as JSON blobs. Each
// tracker module owns one namespace; the record store serializes the
// full collection on every mutation and loads it back on startup.
package storage

type Store interface {
	// Load returns the payload stored under namespace, with found
	// false when the namespace has never been saved.
	Load(namespace string) (payload []byte, found bool, err error)

	// Save replaces the payload stored under namespace.
	Save(namespace string, payload []byte) error
}

// Namespace keys, one per tracked module.
const (
	NamespaceEvents              = "events"
	NamespaceClasses             = "classes"
	NamespaceAssignments         = "assignments"
	NamespaceTests               = "tests"
	NamespaceProjects            = "projects"
	NamespacePeriodEntries       = "period_entries"
	NamespaceCycleData           = "cycle_data"
	NamespaceSportTeams          = "sport_teams"
	NamespaceSportEvents         = "sport_events"
	NamespaceChores              = "chores"
	NamespaceTransactions        = "transactions"
	NamespaceBudgetCategories    = "budget_categories"
	NamespaceSavingsAccounts     = "savings_accounts"
	NamespaceSavingsTransactions = "savings_transactions"
	NamespaceCards               = "cards"
	NamespaceTabSettings         = "tab_settings"
)
