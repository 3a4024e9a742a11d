/*
Package bitvec provides bit-addressable sequences stored in unsigned integer
elements, generic over the element type and over the order in which bits are
placed inside an element.

	v := bitvec.New[order.Lsb0, uint8]()     // [0]{}
	v.Push(true)                            // [1]{1}
	v.Extend(slices.Values([]bool{0: false, 2: true}))
	                                        // [4]{1001}
	s, _ := v.Bits().Range(1, 3)            // [2]{00}
	s.ToggleAll()                           // v is [4]{1111}

A BitPtr is the two-word encoding of a bit region: element address, head
offset and length. A Slice is a view over such a region and performs all bit
access through the access package, which keeps concurrent writers of
neighbouring bits in the same element from losing each other's updates when
the views were split with SplitAt, Chunks or Aliased. A Vec owns its
elements and grows by doubling; a Box is its fixed-length form.
*/
package bitvec
