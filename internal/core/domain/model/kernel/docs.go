// Package kernel holds the primitives shared by the storefront domain model.
//
// Money is represented with github.com/shopspring/decimal and always rounded to
// two fractional digits, matching the numeric(12,2) storage columns. Inbound
// amounts pass through an AmountParser whose ParseMode decides whether malformed
// input is coerced to zero (Lenient, the historical checkout behaviour) or
// rejected with a typed validation error (Strict).
package kernel
