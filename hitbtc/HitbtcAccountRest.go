package hitbtc

import (
	"net/http"
	"net/url"

	. "github.com/deforceHK/gohitbtc"
)

type Account struct {
	*HitBTC
}

// GetBalance reads the main account balance. The trading balance lives under
// Trading.GetTradingBalance, funds move between the two with Transfer.
func (this *Account) GetBalance() ([]*Balance, []byte, error) {
	var balances []*Balance
	resp, err := this.DoSignRequest(http.MethodGet, "/account/balance", nil, nil, &balances)
	if err != nil {
		return nil, resp, err
	}
	return balances, resp, nil
}

// GetTransactions supports currency, sort, by, from, till, limit and offset
// params.
func (this *Account) GetTransactions(params url.Values) ([]*Transaction, []byte, error) {
	var transactions []*Transaction
	resp, err := this.DoSignRequest(http.MethodGet, "/account/transactions", params, nil, &transactions)
	if err != nil {
		return nil, resp, err
	}
	return transactions, resp, nil
}

func (this *Account) GetTransaction(id string) (*Transaction, []byte, error) {
	var transaction = new(Transaction)
	resp, err := this.DoSignRequest(http.MethodGet, "/account/transactions/"+id, nil, nil, transaction)
	if err != nil {
		return nil, resp, err
	}
	return transaction, resp, nil
}

// Withdraw books a crypto payout and returns the transaction id. Unless the
// request sets AutoCommit to false the exchange executes it right away,
// otherwise it waits for CommitWithdraw.
func (this *Account) Withdraw(withdraw *WithdrawRequest) (string, []byte, error) {
	var result = new(WithdrawResult)
	resp, err := this.DoSignRequest(http.MethodPost, "/account/crypto/withdraw", nil, withdraw, result)
	if err != nil {
		return "", resp, err
	}
	return result.Id, resp, nil
}

func (this *Account) CommitWithdraw(id string) (bool, []byte, error) {
	var confirm = new(WithdrawConfirm)
	resp, err := this.DoSignRequest(http.MethodPut, "/account/crypto/withdraw/"+id, nil, nil, confirm)
	if err != nil {
		return false, resp, err
	}
	return confirm.Result, resp, nil
}

func (this *Account) RollbackWithdraw(id string) (bool, []byte, error) {
	var confirm = new(WithdrawConfirm)
	resp, err := this.DoSignRequest(http.MethodDelete, "/account/crypto/withdraw/"+id, nil, nil, confirm)
	if err != nil {
		return false, resp, err
	}
	return confirm.Result, resp, nil
}

func (this *Account) GetDepositAddress(currency string) (*DepositAddress, []byte, error) {
	var address = new(DepositAddress)
	resp, err := this.DoSignRequest(http.MethodGet, "/account/crypto/address/"+currency, nil, nil, address)
	if err != nil {
		return nil, resp, err
	}
	return address, resp, nil
}

// NewDepositAddress rotates the deposit address, the old one keeps crediting.
func (this *Account) NewDepositAddress(currency string) (*DepositAddress, []byte, error) {
	var address = new(DepositAddress)
	resp, err := this.DoSignRequest(http.MethodPost, "/account/crypto/address/"+currency, nil, nil, address)
	if err != nil {
		return nil, resp, err
	}
	return address, resp, nil
}

// Transfer moves funds between the main and the trading account, see the
// TRANSFER consts for the direction. It returns the transaction id.
func (this *Account) Transfer(currency, amount, transferType string) (string, []byte, error) {
	var body = url.Values{}
	body.Set("currency", currency)
	body.Set("amount", amount)
	body.Set("type", transferType)

	var result = new(TransferResult)
	resp, err := this.DoSignRequest(http.MethodPost, "/account/transfer", nil, body, result)
	if err != nil {
		return "", resp, err
	}
	return result.Id, resp, nil
}
