package bloom

/*

# Sized Bloom filters with pluggable index strategies

A Bloom filter provides a *probabilistic prefilter*:

- If the filter says "definitely not present", then the element is not present.
- If the filter says "maybe present", then the element may or may not be present
  (false positives are possible).

Elements are never stored and can not be removed.

## Sizing

A filter is created from a target false positive probability p and an expected
element count n. The bit count m and hash count k follow the usual optimum:

	m = ceil(-n * ln(p) / (ln 2)^2)
	k = ceil((m / n) * ln 2)

For p = 0.01 and n = 1000 that is m = 9586 and k = 7. The sizing functions are
exported (OptimalSize, OptimalHashCount, NewParams) so callers can plan memory
without allocating a filter.

## Reported error rate

	P(false positive) = (1 - e^(-k * elements / m))^k

ExpectedFalsePositiveProbability evaluates this at the design capacity n,
CurrentFalsePositiveProbability at the number of Add calls made so far. The
formula assumes the index strategy behaves like k independent uniform draws
over [0, m).

## Index strategies

IndexStrategy is the one extension point: it turns the canonical bytes of an
element into k bit positions. Three are provided:

- DoubleHash: SHA3-256 and SHA-256 digests read as big integers and combined
  as first + i*second (mod m). This is the default.
- FastDoubleHash: the same combination over two 64-bit xxhash digests.
- Murmur3: k independently seeded murmur3 hashes.

## Element encoding

Add and MightContain accept any value and encode it with ElementBytes. The
encoding must be identical for logically equal elements or the no false
negative guarantee is lost.

## Concurrency

A Filter is not safe for concurrent use. Callers sharing one must serialise
Add and Clear against everything else, a sync.RWMutex with Add and Clear under
the write lock and MightContain under the read lock is sufficient. The read
path writes no Filter state, provided the index strategy is itself safe for
concurrent use (all strategies in this package are).

*/
