package components

const (
	CardHeight        = 4  // thick border (2) + title + meta line
	ColumnWidth       = 32 // outer width of a board column, borders included
	ColumnHeaderLines = 3  // top border + title + scroll indicator, above the first card
	columnFooterLines = 2  // bottom indicator + bottom border
	cardInnerWidth    = ColumnWidth - 6
	TabBarHeight      = 3
)
