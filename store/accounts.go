package store

import (
	"sort"

	models "shop-management/model"
)

// AccountStore owns the username → account mapping and is the only writer of
// the persisted accounts snapshot. The file and the in-memory mapping are
// reconciled only at Load and at each explicit Save.
type AccountStore struct {
	backend  Backend
	accounts map[string]*models.Account
}

func NewAccountStore(b Backend) *AccountStore {
	return &AccountStore{backend: b, accounts: map[string]*models.Account{}}
}

// Load replaces the in-memory mapping with the persisted snapshot. On
// failure the previous in-memory state stays authoritative.
func (s *AccountStore) Load() error {
	accounts, err := s.backend.LoadAccounts()
	if err != nil {
		return err
	}
	s.accounts = accounts
	return nil
}

// Save rewrites the persisted accounts snapshot from the in-memory mapping.
func (s *AccountStore) Save() error {
	return s.backend.SaveAccounts(s.accounts)
}

// Register creates a new account. A taken username fails with
// ErrDuplicateUsername and keeps the first registration untouched.
func (s *AccountStore) Register(username, password string, role models.Role) error {
	if _, ok := s.accounts[username]; ok {
		return ErrDuplicateUsername
	}
	if !role.Valid() {
		return models.ErrInvalidRole
	}
	s.accounts[username] = models.NewAccount(username, password, role)
	return s.Save()
}

// Login returns the account only on an exact username and password match.
func (s *AccountStore) Login(username, password string) (*models.Account, error) {
	a, ok := s.accounts[username]
	if !ok || a.Password != password {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// Delete removes the account and persists.
func (s *AccountStore) Delete(username string) error {
	if _, ok := s.accounts[username]; !ok {
		return ErrAccountNotFound
	}
	delete(s.accounts, username)
	return s.Save()
}

// ChangeRole rebuilds the account as the target variant, transplanting the
// existing cart and history verbatim, and replaces the stored entry.
func (s *AccountStore) ChangeRole(username string, newRole models.Role) error {
	a, ok := s.accounts[username]
	if !ok {
		return ErrAccountNotFound
	}
	if !newRole.Valid() {
		return models.ErrInvalidRole
	}
	replacement := models.NewAccount(a.Username, a.Password, newRole)
	replacement.Cart = a.Cart
	replacement.History = a.History
	s.accounts[username] = replacement
	return s.Save()
}

// ChangePassword overwrites the stored password and persists.
func (s *AccountStore) ChangePassword(username, newPassword string) error {
	a, ok := s.accounts[username]
	if !ok {
		return ErrAccountNotFound
	}
	a.Password = newPassword
	return s.Save()
}

// Get returns the live account for username, if present.
func (s *AccountStore) Get(username string) (*models.Account, bool) {
	a, ok := s.accounts[username]
	return a, ok
}

func (s *AccountStore) Len() int {
	return len(s.accounts)
}

// AccountInfo is the listing row shown to operators.
type AccountInfo struct {
	Username string
	Role     models.Role
}

// List returns every account's username and role, ordered by username so the
// listing is stable across calls.
func (s *AccountStore) List() []AccountInfo {
	out := make([]AccountInfo, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, AccountInfo{Username: a.Username, Role: a.Role})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

// Statistics aggregates purchase history across the whole store.
type Statistics struct {
	TotalPurchases       int
	TotalRevenue         float64
	AveragePurchaseValue float64
}

// Statistics walks every account's history. ok is false when no purchase
// exists anywhere; that is a distinct "no data" state, not zeros.
func (s *AccountStore) Statistics() (Statistics, bool) {
	var st Statistics
	for _, a := range s.accounts {
		for _, p := range a.History {
			st.TotalPurchases++
			st.TotalRevenue += p.Price
		}
	}
	if st.TotalPurchases == 0 {
		return Statistics{}, false
	}
	st.AveragePurchaseValue = st.TotalRevenue / float64(st.TotalPurchases)
	return st, true
}
