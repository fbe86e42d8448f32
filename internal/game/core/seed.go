package core

// Seed is a single unit of game material. Seeds are fungible; a pit's
// contents only matter by count.
type Seed struct{}
