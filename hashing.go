// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

// Hash functions

func _TRIPLE(a, b, c, len int) int {
	return int(_PAIR64(uint64(c), _PAIR(a, b, len), uint64(len)))
}

// _PAIR is a mapping function that maps (bijectively) a pair of integers
// (a, b) into a unique integer. It is therefore a perfect hash: no
// collisions.
func _PAIR(a, b, len int) uint64 {
	return (((uint64(a+b) * uint64(a+b+1)) / 2) + uint64(a)) % uint64(len)
}

func _PAIR64(a, b, len uint64) uint64 {
	return (((((a + b) % len) * ((a + b + 1) % len)) / 2) + a) % len
}

// ************************************************************

// The hash function for operation Not(n) is simply n.

func (b *BDD) matchnot(n int) int {
	entry := b.applycache.table[n%len(b.applycache.table)]
	if entry.a == n && entry.c == int(op_not) {
		return entry.res
	}
	return -1
}

func (b *BDD) setnot(n int, res int) int {
	if res < 0 {
		return -1
	}
	b.applycache.table[n%len(b.applycache.table)] = cacheData{
		a:   n,
		c:   int(op_not),
		res: res,
	}
	return res
}

// ************************************************************

// The hash function for Apply is #(left, right, applycache.op).

func (b *BDD) matchapply(left, right int) int {
	entry := b.applycache.table[_TRIPLE(left, right, int(b.applycache.op), len(b.applycache.table))]
	if entry.a == left && entry.b == right && entry.c == int(b.applycache.op) {
		return entry.res
	}
	return -1
}

func (b *BDD) setapply(left, right, res int) int {
	if res < 0 {
		return -1
	}
	b.applycache.table[_TRIPLE(left, right, int(b.applycache.op), len(b.applycache.table))] = cacheData{
		a:   left,
		b:   right,
		c:   int(b.applycache.op),
		res: res,
	}
	return res
}

// ************************************************************

// The hash function for ITE is #(f, g, h).

func (b *BDD) matchite(f, g, h int) int {
	entry := b.itecache.table[_TRIPLE(f, g, h, len(b.itecache.table))]
	if entry.a == f && entry.b == g && entry.c == h {
		return entry.res
	}
	return -1
}

func (b *BDD) setite(f, g, h, res int) int {
	if res < 0 {
		return -1
	}
	b.itecache.table[_TRIPLE(f, g, h, len(b.itecache.table))] = cacheData{
		a:   f,
		b:   g,
		c:   h,
		res: res,
	}
	return res
}

// ************************************************************

// The hash function for quantification is simply n; the cache id encodes
// both the varset and the kind of quantification.

func (b *BDD) matchquant(n int) int {
	entry := b.quantcache.table[n%len(b.quantcache.table)]
	if entry.a == n && entry.c == b.quantcache.id {
		return entry.res
	}
	return -1
}

func (b *BDD) setquant(n int, res int) int {
	if res < 0 {
		return -1
	}
	b.quantcache.table[n%len(b.quantcache.table)] = cacheData{
		a:   n,
		c:   b.quantcache.id,
		res: res,
	}
	return res
}

// ************************************************************

// The hash function for AppEx is #(left, right).

func (b *BDD) matchappex(left, right int) int {
	entry := b.appexcache.table[int(_PAIR(left, right, len(b.appexcache.table)))]
	if entry.a == left && entry.b == right && entry.c == b.appexcache.id {
		return entry.res
	}
	return -1
}

func (b *BDD) setappex(left, right, res int) int {
	if res < 0 {
		return -1
	}
	b.appexcache.table[int(_PAIR(left, right, len(b.appexcache.table)))] = cacheData{
		a:   left,
		b:   right,
		c:   b.appexcache.id,
		res: res,
	}
	return res
}

// ************************************************************

// The hash function for operation Replace(n) is simply n.

func (b *BDD) matchreplace(n int) int {
	entry := b.replacecache.table[n%len(b.replacecache.table)]
	if entry.a == n && entry.c == b.replacecache.id {
		return entry.res
	}
	return -1
}

func (b *BDD) setreplace(n int, res int) int {
	if res < 0 {
		return -1
	}
	b.replacecache.table[n%len(b.replacecache.table)] = cacheData{
		a:   n,
		c:   b.replacecache.id,
		res: res,
	}
	return res
}
