/*
Package frame provides a column-oriented table modeled on R's data frame,
together with the operations that group and join tables.

A [Table] has an ordered list of named columns, all [vec.Vector]s of the
same length, and a parallel sequence of row labels. Tables are immutable:
every operation returns a new Table and never shares column storage with
its inputs.

Operations that accept either a sequence or a table take a [Value], which
is implemented by vec.Vector and *Table only.

# Grouping

[Partition] splits a Vector or a Table by a parallel key sequence. Groups
are emitted in ascending key order and rows keep their original relative
order within each group:

	groups, _ := frame.Partition(vec.Vector{1, 2, 3, 4, 5, 6}, vec.Vector{"b", "b", "c", "c", "c", "a"})
	// a: [6]  b: [1 2]  c: [3 4 5]

[Tapply] and [By] apply a function to each group.

# Joins

[Rbind] stacks two tables with the same column set. [Cbind] joins tables
and vectors side by side; on a name collision the left operand's column
wins.
*/
package frame
