// Package updater provides DistanceUpdater policies for core.Graph.JoinCluster:
// the rule that turns the distances between a remaining vertex and the
// members of a new cluster into a single distance to the cluster.
//
// Policies
//
//   - modal: the most frequent value; ties go to the smallest value. On
//     ultrametric input all member distances agree, so modal reproduces them
//     exactly while ignoring isolated noisy entries.
//   - min / max: single- and complete-linkage.
//   - mean: average linkage (UPGMA-like).
//
// Policies are pure functions of their arguments and are looked up by name
// through a registry (New, Names, Register), so configuration files and CLI
// flags can select them without type switches.
//
// Every policy returns 0 for an empty input, which JoinCluster treats as
// "no edge".
package updater
