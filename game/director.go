package game

type Director interface {
	/**
	 * Initialize the director for a new session
	 */
	Init(*Session)

	/**
	 * Choose the next tile to select, or false if there is nothing to pick
	 */
	Next() (int, bool)
}
