/*
Package tui implements the interactive terminal portfolio using Bubble Tea.

# Layout

	Name
	Title
	 1 Home  2 About  3 Experience  4 Skills  5 Projects  6 Contact
	╭──────────────────────────────────────────────╮
	│ section content (scrollable viewport)        │
	╰──────────────────────────────────────────────╯
	→/l next section  ←/h previous section  ...
	2/6 About

The navigation bar collapses to bare shortcuts on narrow terminals. Below
the minimum size a "terminal too small" panel replaces the layout, and an
invalid content file replaces it with the validation errors.

# Input

Every key goes through the same pipeline:

 1. While the help overlay is open, the help context of the keybinds
    registry is consulted first (esc, ?, enter close it; q still quits).
 2. The navigation decoder turns the key into an intent. Anything but
    Ignore is dispatched to the navigation state machine. A section change
    records a visit with the session tracker; any other intent only
    refreshes activity. Exit stops the program.
 3. Keys the decoder ignores are looked up in the navigation context of
    the registry for UI actions: help, scrolling and copying the contact
    email.

# Sessions

New creates one tracker session per program and subscribes to the
tracker. Tracker callbacks never touch the model: ended and shutdown events
are pushed onto a buffered channel that a tea.Cmd reads, so an idle timeout
reaches Update as an ordinary message and stops the program.

Run ends the session when the program stops: exit for a user exit,
shutdown when the context was cancelled by a signal, error when the
program failed.

# Styling

All styles come from a lipgloss.Renderer whose color profile is taken from
the terminal capability probe. Without unicode support the theme switches
to ASCII borders, bullets and skill bars; without border support panels
are drawn with hidden borders so the layout does not shift.
*/
package tui
