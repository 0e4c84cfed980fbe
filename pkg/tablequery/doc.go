// Package tablequery slices ordered collections for list views through a
// fixed search -> filter -> paginate pipeline.
//
// Every list view (users, accounts, coupons, staff, organizations) owns its
// data and its State; the pipeline itself is a pure function, so identical
// inputs always produce the identical page. Field access goes through a
// caller-supplied FieldFunc, which keeps the pipeline generic over any item
// type:
//
//	type Account struct {
//		Name   string
//		Status string
//		Amount float64
//	}
//
//	field := func(a Account, key string) any {
//		switch key {
//		case "name":
//			return a.Name
//		case "status":
//			return a.Status
//		case "amount":
//			return a.Amount
//		}
//		return nil
//	}
//
//	state := tablequery.NewState(25).
//		WithSearch("checking").
//		WithFilter("status", "active").
//		WithFilter("amount", tablequery.Range{Min: tablequery.Bound(100)})
//
//	result := tablequery.Query(accounts, state, []string{"name"}, field)
//
// State transitions that change the search string or a filter reset the
// page cursor to 1, and Query clamps the cursor to the recomputed page
// count, so pagination can never reference a page past the filtered set.
package tablequery
