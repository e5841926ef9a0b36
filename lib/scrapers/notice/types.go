package notice

// Notice is one row of the public notice board. Id is assigned by the
// board and grows monotonically, it is the natural key inside the
// notice collection and the cursor the incremental sync derives from.
type Notice struct {
	Id       int    `bson:"id"`
	Category string `bson:"category"`
	Title    string `bson:"title"`
	Date     string `bson:"date"`
	Link     string `bson:"link"`
	Writer   string `bson:"writer"`
}
