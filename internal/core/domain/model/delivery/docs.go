// Package delivery models the tiered delivery charge rules of the storefront.
//
// The package includes:
//   - Tier: an inclusive amount range [min, max] (max may be unbounded) mapped to a charge
//   - Config: the single active rule set, an ordered list of tiers plus a default charge and a note
//   - Replacement: an administrator's wholesale replacement of the rule set
//   - ResolveCharge: the pure function mapping an order subtotal to its delivery charge
//
// Key business rules:
//   - Tiers are evaluated in the order given; callers load them sorted by ascending min amount
//   - The first tier containing the subtotal wins, both bounds inclusive
//   - The default charge applies when no tier matches, including when there are no tiers
//   - Every amount is non-negative and kept at two fractional digits
//
// ResolveCharge is used both for the authoritative charge frozen onto an order and for
// advisory previews, so the displayed and charged values cannot drift apart.
package delivery
