/*
Package persistent is the home of immutable persistent data structures. Persistent data
structures are never modified in place: every “modification” derives a new value, leaving
the original unchanged. Functional programming languages like Lisp have long relied on them.

*Persistent* data structures offer structural sharing, which means that if two values are
mostly copies of each other, most of the memory they take up will be shared between them.
Deriving a new version is therefore cheap in terms of space- and time-complexity.

Sub-packages:

  - list: a singly linked list sharing common tails, with reference-counted nodes

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
