package seatable

// Row is one record as SeaTable returns it: a flat map keyed by either a
// human-readable column name or an opaque alias token, depending on which
// schema revision wrote the row. Underscore-prefixed keys ("_id", "_mtime",
// ...) are base metadata, not data columns.
type Row map[string]interface{}

// RowUpdate patches named fields of one existing row.
type RowUpdate struct {
	RowID string `json:"row_id"`
	Row   Row    `json:"row"`
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
	DtableUUID  string `json:"dtable_uuid"`
}

type listRowsResponse struct {
	Rows []Row `json:"rows"`
}

type appendRowsRequest struct {
	TableName string `json:"table_name"`
	Rows      []Row  `json:"rows"`
}

type updateRowsRequest struct {
	TableName string      `json:"table_name"`
	Updates   []RowUpdate `json:"updates"`
}
