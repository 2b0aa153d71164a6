// Package gridkey is an interactive terminal widget for editing a
// rectangular grid of values with the keyboard.
//
// A [Controller] owns a board of generic cells, a cursor, and a blink
// animation. Arrow keys move the cursor (wrapping at every edge), space
// applies a caller-supplied transform to the cell under the cursor, and
// enter ends the session. The caller owns all game semantics; gridkey
// owns only input, cursor motion, blinking, and redraw.
//
//	cfg := gridkey.Config[Mark]{
//	    Width:    10,
//	    Height:   10,
//	    Initial:  Mark("."),
//	    Callback: func(x, y int, cur Mark) Mark { return toggle(cur) },
//	}
//	ctl, err := gridkey.New(cfg)
//	if err != nil {
//	    return err
//	}
//	done, err := ctl.Start("place your pieces")
//	if err != nil {
//	    return err
//	}
//	<-done
//	board := ctl.Cells()
//
// Raw keyboard mode is a process-wide resource: it is acquired when
// Start begins the session and released when the session ends, never
// toggled from anywhere else. The event loop is single-threaded; key
// handlers and blink ticks run strictly serially, and the selection
// callback runs synchronously inside the key handler, so a slow
// callback delays the next redraw.
package gridkey
