// Package order provides the Order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding customer, items, frozen totals and payment proof
//   - Status: the lifecycle state machine New Order -> Payment Done -> Order Processed
//   - Customer, Item: value objects validated at construction
//   - PaymentScreenshot: the customer's UPI payment proof, binary or legacy marker
//
// Key business rules:
//   - A new order always starts in New Order, whatever the client claims
//   - Status only moves forward one step at a time; Order Processed is terminal
//   - Only Order Processed orders may be deleted
//   - Total amount and delivery charge are computed once at creation and never recomputed
package order
