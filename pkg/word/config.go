package word

// Width and Height are the fixed dimensions of the word rectangle this
// binary searches for: every row has Width letters, every column has
// Height letters. They are compile-time constants — per spec, changing
// the shape of rectangle being searched for requires rebuilding the
// binary, exactly as the original engine selected W/H via Cargo
// feature flags at compile time.
const (
	Width  = 5
	Height = 5
)

// Size is the total number of cells in a rectangle.
const Size = Width * Height
