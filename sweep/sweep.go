package sweep

// Triangulate runs the full plane sweep over segments under the given fill
// rule and returns a compacted vertex buffer plus a flat triangle index
// list (three indices per triangle). It is the package's only public entry
// point; every internal invariant violation surfaces here as a returned
// error rather than a panic, via recoverInvariant.
func Triangulate(segments []Segment, evenOdd bool) (points []Point2, indices []int, err error) {
	defer recoverInvariant(&err)

	entities := NewEntities()
	sc, ingestErr := ingest(entities, segments)
	if ingestErr != nil {
		return nil, nil, ingestErr
	}
	engine := NewEngine(entities, evenOdd)
	triangles := engine.Run()
	points, indices = flush(entities, sc, triangles)
	return points, indices, nil
}
