package storage

import (
	"context"
	"testing"

	"expensehero/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite provides a test suite for account and expense persistence
type RepositoryTestSuite struct {
	suite.Suite
	repo *SQLiteRepository
	ctx  context.Context
}

// SetupTest runs before each test
func (suite *RepositoryTestSuite) SetupTest() {
	repo, err := NewSQLiteRepository(":memory:")
	require.NoError(suite.T(), err, "failed to create test repository")
	suite.repo = repo
	suite.ctx = context.Background()
}

// TearDownTest runs after each test
func (suite *RepositoryTestSuite) TearDownTest() {
	if suite.repo != nil {
		suite.repo.Close()
	}
}

func (suite *RepositoryTestSuite) account(email string) core.Account {
	return core.Account{Email: email, PasswordHash: "bcrypt-hash", Currency: core.DefaultCurrency}
}

func (suite *RepositoryTestSuite) addExpense(email, item string, cents int64) int64 {
	id, err := suite.repo.CreateExpense(suite.ctx, core.Expense{
		Owner: email,
		Item:  item,
		Cost:  core.Money{Cents: cents},
		Date:  core.NewDate(2024, 3, 15),
	})
	require.NoError(suite.T(), err)
	return id
}

func (suite *RepositoryTestSuite) TestCreateAccount() {
	err := suite.repo.CreateAccount(suite.ctx, suite.account("a@b.com"))
	assert.NoError(suite.T(), err)

	acc, err := suite.repo.GetAccountByEmail(suite.ctx, "a@b.com")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "a@b.com", acc.Email)
	assert.Equal(suite.T(), "bcrypt-hash", acc.PasswordHash)
	assert.Equal(suite.T(), core.DefaultCurrency, acc.Currency)
}

func (suite *RepositoryTestSuite) TestCreateAccountDuplicate() {
	first := suite.account("a@b.com")
	require.NoError(suite.T(), suite.repo.CreateAccount(suite.ctx, first))

	second := suite.account("a@b.com")
	second.PasswordHash = "other-hash"
	err := suite.repo.CreateAccount(suite.ctx, second)
	assert.ErrorIs(suite.T(), err, core.ErrDuplicateAccount)

	// Stored record unchanged after the failed attempt
	acc, err := suite.repo.GetAccountByEmail(suite.ctx, "a@b.com")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "bcrypt-hash", acc.PasswordHash)
}

func (suite *RepositoryTestSuite) TestGetAccountByEmailNotFound() {
	_, err := suite.repo.GetAccountByEmail(suite.ctx, "missing@b.com")
	assert.ErrorIs(suite.T(), err, ErrAccountNotFound)
}

func (suite *RepositoryTestSuite) TestUpdateAccountCurrency() {
	require.NoError(suite.T(), suite.repo.CreateAccount(suite.ctx, suite.account("a@b.com")))

	require.NoError(suite.T(), suite.repo.UpdateAccountCurrency(suite.ctx, "a@b.com", "€"))

	acc, err := suite.repo.GetAccountByEmail(suite.ctx, "a@b.com")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), core.Currency("€"), acc.Currency)
}

func (suite *RepositoryTestSuite) TestUpdateAccountCurrencyUnknownEmailIsNoOp() {
	err := suite.repo.UpdateAccountCurrency(suite.ctx, "missing@b.com", "€")
	assert.NoError(suite.T(), err)
}

func (suite *RepositoryTestSuite) TestListExpensesNewestFirst() {
	suite.addExpense("a@b.com", "Lunch", 1550)
	suite.addExpense("a@b.com", "Coffee", 450)
	suite.addExpense("a@b.com", "Groceries", 4500)
	suite.addExpense("other@b.com", "Rent", 90000)

	expenses, err := suite.repo.ListExpenses(suite.ctx, "a@b.com")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), expenses, 3, "only the owner's expenses")

	assert.Equal(suite.T(), "Groceries", expenses[0].Item)
	assert.Equal(suite.T(), "Coffee", expenses[1].Item)
	assert.Equal(suite.T(), "Lunch", expenses[2].Item)
	for i := 1; i < len(expenses); i++ {
		assert.Greater(suite.T(), expenses[i-1].ID, expenses[i].ID, "ids strictly decreasing")
	}
}

func (suite *RepositoryTestSuite) TestListExpensesEmpty() {
	expenses, err := suite.repo.ListExpenses(suite.ctx, "a@b.com")
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), expenses)
}

func (suite *RepositoryTestSuite) TestExpenseDateRoundTrip() {
	suite.addExpense("a@b.com", "Lunch", 1000)

	expenses, err := suite.repo.ListExpenses(suite.ctx, "a@b.com")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), expenses, 1)
	assert.Equal(suite.T(), "2024-03-15", expenses[0].Date.String())
}

func (suite *RepositoryTestSuite) TestDeleteLastExpenseByName() {
	first := suite.addExpense("a@b.com", "Coffee", 300)
	second := suite.addExpense("a@b.com", "Coffee", 350)
	suite.addExpense("a@b.com", "Lunch", 1200)

	require.NoError(suite.T(), suite.repo.DeleteLastExpenseByName(suite.ctx, "a@b.com", "Coffee"))

	expenses, err := suite.repo.ListExpenses(suite.ctx, "a@b.com")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), expenses, 2, "exactly one row deleted")

	ids := []int64{expenses[0].ID, expenses[1].ID}
	assert.Contains(suite.T(), ids, first, "the older duplicate survives")
	assert.NotContains(suite.T(), ids, second, "the highest-id match is the one removed")
}

func (suite *RepositoryTestSuite) TestDeleteLastExpenseByNameNoMatchIsNoOp() {
	suite.addExpense("a@b.com", "Lunch", 1200)

	require.NoError(suite.T(), suite.repo.DeleteLastExpenseByName(suite.ctx, "a@b.com", "Coffee"))
	require.NoError(suite.T(), suite.repo.DeleteLastExpenseByName(suite.ctx, "a@b.com", "Coffee"))

	expenses, err := suite.repo.ListExpenses(suite.ctx, "a@b.com")
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), expenses, 1, "store state identical before and after")
}

func (suite *RepositoryTestSuite) TestDeleteDoesNotCrossOwners() {
	suite.addExpense("a@b.com", "Coffee", 300)
	suite.addExpense("other@b.com", "Coffee", 400)

	require.NoError(suite.T(), suite.repo.DeleteLastExpenseByName(suite.ctx, "a@b.com", "Coffee"))

	others, err := suite.repo.ListExpenses(suite.ctx, "other@b.com")
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), others, 1, "other owner's row untouched")
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
