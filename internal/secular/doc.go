// Package secular implements the Laplace–Lagrange secular theory of
// long-term orbital evolution.
//
// The theory linearizes the orbit-averaged disturbing function to leading
// order in eccentricity and inclination. The proxy variables (h,k) and
// (p,q) then obey two decoupled linear systems whose coupling matrices
// depend only on the body masses and semi-major axes:
//
//   - [Build]: assemble the eccentricity and inclination coupling matrices
//   - [EigenSolution]: normal modes (frequency + shape vector) of one matrix
//   - [Solution]: modes of both systems fitted to the initial conditions,
//     evaluable at arbitrary times
//
// A [Solution] is immutable after construction and safe for concurrent
// evaluation. Rebuilding from new initial conditions is the only way to
// change it.
//
// # Example
//
//	sol, err := secular.New(1.0, bodies)
//	if err != nil {
//	    return err
//	}
//	traj := sol.Evaluate(times)
package secular
