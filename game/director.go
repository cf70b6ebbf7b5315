package game

// Director plays a session through the same commands a player would issue.
type Director interface {
	/**
	 * Short name, shown in the status line
	 */
	Name() string

	/**
	 * Decide the next command from the current view. Returns false when there is nothing
	 * left to do.
	 */
	Act(view View) (Command, bool)
}
