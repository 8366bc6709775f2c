// Package economy settles sell-all proceeds.
//
// The backend is chosen once at startup from server.economy:
//
//   - ledger: balances in the `economy_balances` table through gorm.
//   - log: no currency backend; deposits are logged and always succeed.
//
// Any other name fails New with ErrUnknownProvider.
package economy
