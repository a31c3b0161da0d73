package models

// Branch is a company branch office printed in the slip header. This is
// static reference data, not sourced from the booking.
type Branch struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Branches is the fixed set of branch address blocks shown on every slip.
var Branches = []Branch{
	{Name: "Ahmedabad (H.O.)", Address: "12, Transport Nagar, Naroda Road, Ahmedabad - 382330", Phone: "079-22820145"},
	{Name: "Surat", Address: "Shed 4, Ring Road Goods Yard, Surat - 395002", Phone: "0261-2346721"},
	{Name: "Rajkot", Address: "Plot 18, Gondal Road Industrial Area, Rajkot - 360004", Phone: "0281-2387410"},
	{Name: "Mumbai", Address: "Gala 7, Vashi Truck Terminal, Navi Mumbai - 400703", Phone: "022-27655892"},
	{Name: "Indore", Address: "23, Loha Mandi, Dewas Naka, Indore - 452010", Phone: "0731-2555308"},
	{Name: "Jaipur", Address: "F-92, Road No. 5, VKI Area, Jaipur - 302013", Phone: "0141-2331276"},
}
