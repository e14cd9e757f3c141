// Package store provides an observable value container.
//
// A Store[T] holds one value that is replaced through Update, which applies a
// function to the previous value under a lock and then notifies subscribers.
// It is the Go counterpart of a reactive UI store: the component that owns the
// state updates it, renderers subscribe and redraw on every delivered value.
//
//	errs := store.New(forms.Slots{}, store.WithName("painting"))
//	defer errs.Close()
//
//	sub := errs.Subscribe(ctx)
//	go func() {
//		for slots := range sub.C() {
//			render(slots)
//		}
//	}()
//
//	errs.Update(func(prev forms.Slots) forms.Slots {
//		return lo.Assign(prev, forms.Slots{"title": ""})
//	})
//
// Delivery never blocks the updater. Each subscriber has a single-value buffer
// and a slow subscriber observes only the most recent value.
package store
