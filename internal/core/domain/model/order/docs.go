// Package order contains the Order aggregate of the tailoring domain.
//
// The aggregate root manages the production lifecycle as a forward-only
// state machine (OrderPlaced, Cutting, Stitching, Trial, Ready, Delivered,
// with Cancelled reachable from any non-terminal stage) and owns everything
// frozen into the order at creation time: line items, the fabric selection
// with its captured catalog price, the customer's measurement snapshot, the
// customization block, the embroidery sub-entity with its priced cost, and
// the order total itself.
//
// Key design points:
//   - The total is computed exactly once, at creation, by the pricing
//     calculator; later catalog price changes never touch existing orders.
//   - The embroidery sub-workflow gates the Stitching stage while enabled
//     and incomplete.
//   - Transitions carry an explicit actor and role; role rules (tailor
//     ownership, customer cancellation window) are enforced inside the
//     aggregate, and every transition is recorded in an append-only audit
//     trail. Administrative overrides bypass the machine but are always
//     marked as forced.
//   - Aggregates are constructed only through NewOrder/RestoreOrder and keep
//     all fields private, exposing validated behavior instead of setters.
package order
