package schema

// TypeCode is the SQL CLI / JDBC data type code of a column.
// The numeric values are fixed by the ODBC and JDBC specifications,
// which is why driver metadata calls can consume them directly.
type TypeCode int16

const (
	TypeBit       TypeCode = -7
	TypeBigint    TypeCode = -5
	TypeBinary    TypeCode = -2
	TypeChar      TypeCode = 1
	TypeDecimal   TypeCode = 3
	TypeInteger   TypeCode = 4
	TypeSmallint  TypeCode = 5
	TypeDouble    TypeCode = 8
	TypeVarchar   TypeCode = 12
	TypeDate      TypeCode = 91
	TypeTime      TypeCode = 92
	TypeTimestamp TypeCode = 93
)

func (t TypeCode) String() string {
	switch t {
	case TypeBit:
		return "BIT"
	case TypeBigint:
		return "BIGINT"
	case TypeBinary:
		return "BINARY"
	case TypeChar:
		return "CHAR"
	case TypeDecimal:
		return "DECIMAL"
	case TypeInteger:
		return "INTEGER"
	case TypeSmallint:
		return "SMALLINT"
	case TypeDouble:
		return "DOUBLE"
	case TypeVarchar:
		return "VARCHAR"
	case TypeDate:
		return "DATE"
	case TypeTime:
		return "TIME"
	case TypeTimestamp:
		return "TIMESTAMP"
	default:
		return "OTHER"
	}
}

// Nullability codes, as reported by TYPE_INFO and column descriptions.
const (
	NoNulls         int16 = 0
	Nullable        int16 = 1
	NullableUnknown int16 = 2
)

// Searchability codes for TYPE_INFO.
const (
	PredNone   int16 = 0
	PredChar   int16 = 1
	PredBasic  int16 = 2
	Searchable int16 = 3
)

// TypeInfo describes one SQL type supported as a table column.
type TypeInfo struct {
	Name          string
	Code          TypeCode
	Precision     int32
	LiteralPrefix string
	LiteralSuffix string
	CreateParams  string
	CaseSensitive bool
	Searchability int16
	Unsigned      bool
	FixedScale    bool
	AutoIncrement bool
	MinScale      int16
	MaxScale      int16
	Radix         int32
}

// typeInfoRows is the static value set behind SYSTEM_TYPEINFO. The set
// and its attributes are fixed per engine build; schema state never
// changes them.
var typeInfoRows = []TypeInfo{
	{Name: "BIT", Code: TypeBit, Precision: 1, Searchability: Searchable, FixedScale: true},
	{Name: "BIGINT", Code: TypeBigint, Precision: 19, Searchability: PredBasic, AutoIncrement: true, Radix: 10},
	{Name: "BINARY", Code: TypeBinary, Precision: 2147483647, LiteralPrefix: "'", LiteralSuffix: "'", Searchability: PredBasic},
	{Name: "CHAR", Code: TypeChar, Precision: 2147483647, LiteralPrefix: "'", LiteralSuffix: "'", CreateParams: "LENGTH", CaseSensitive: true, Searchability: Searchable},
	{Name: "DECIMAL", Code: TypeDecimal, Precision: 2147483647, CreateParams: "PRECISION,SCALE", Searchability: PredBasic, MaxScale: 32767, Radix: 10},
	{Name: "INTEGER", Code: TypeInteger, Precision: 10, Searchability: PredBasic, AutoIncrement: true, Radix: 10},
	{Name: "SMALLINT", Code: TypeSmallint, Precision: 5, Searchability: PredBasic, Radix: 10},
	{Name: "DOUBLE", Code: TypeDouble, Precision: 17, Searchability: PredBasic, Radix: 2},
	{Name: "VARCHAR", Code: TypeVarchar, Precision: 2147483647, LiteralPrefix: "'", LiteralSuffix: "'", CreateParams: "LENGTH", CaseSensitive: true, Searchability: Searchable},
	{Name: "DATE", Code: TypeDate, Precision: 10, LiteralPrefix: "'", LiteralSuffix: "'", Searchability: PredBasic},
	{Name: "TIME", Code: TypeTime, Precision: 8, LiteralPrefix: "'", LiteralSuffix: "'", Searchability: PredBasic},
	{Name: "TIMESTAMP", Code: TypeTimestamp, Precision: 29, LiteralPrefix: "'", LiteralSuffix: "'", Searchability: PredBasic, MaxScale: 9},
}

// AllTypes returns the column types this engine build supports,
// in their reporting order.
func AllTypes() []TypeInfo {
	out := make([]TypeInfo, len(typeInfoRows))
	copy(out, typeInfoRows)
	return out
}
