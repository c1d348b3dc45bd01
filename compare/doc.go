// Package compare runs several pathfinding algorithms on the same query and
// aggregates their results into a Report.
//
// Each algorithm is timed around its routing.Find call. Its outcome is
// one of StatusFound, StatusNoPath, StatusFailed or StatusTimedOut, and a
// failure in one algorithm never affects the others. Found paths are
// ranked by ascending cost with ties kept in requested order; Efficiency is
// the best cost divided by the algorithm's own cost.
//
// Algorithms run in parallel goroutines by default and are joined before
// ranking. The graph is only read.
//
//	rep, err := compare.Compare(ctx, g, "1", "16", routing.Kinds(),
//	    compare.WithTimeout(2*time.Second),
//	    compare.WithCoordinates(pos.Lookup))
//	if err != nil {
//	    return err
//	}
//	rep.WriteText(os.Stdout)
package compare
