package coords

import "github.com/shururuun/TourGuide-Utils/types"

// Map ids of the two continents.
const (
	MapEasternKingdoms = 0
	MapKalimdor        = 1
)

// World map area bounds: id, left, right, top, bottom. Order matters for
// overlap resolution and is kept stable.
var eastern = []types.Zone{
	{Name: "Alterac Mountains", ID: 36, Left: 783.3333, Right: -2016.667, Top: 1500.0, Bottom: -366.6667},
	{Name: "Arathi Highlands", ID: 45, Left: -866.6666, Right: -4466.667, Top: -133.3333, Bottom: -2533.333},
	{Name: "Azeroth", ID: 0, Left: 16000.0, Right: -19199.9, Top: 7466.6, Bottom: -16000.0},
	{Name: "Badlands", ID: 3, Left: -2079.167, Right: -4566.667, Top: -5889.583, Bottom: -7547.917},
	{Name: "Blasted Lands", ID: 4, Left: -1241.667, Right: -4591.667, Top: -10566.67, Bottom: -12800.0},
	{Name: "Burning Steppes", ID: 46, Left: -266.6667, Right: -3195.833, Top: -7031.25, Bottom: -8983.333},
	{Name: "Deadwind Pass", ID: 41, Left: -833.3333, Right: -3333.333, Top: -9866.666, Bottom: -11533.33},
	{Name: "Dun Morogh", ID: 1, Left: 1802.083, Right: -3122.917, Top: -3877.083, Bottom: -7160.417},
	{Name: "Duskwood", ID: 10, Left: 833.3333, Right: -1866.667, Top: -9716.666, Bottom: -11516.67},
	{Name: "Eastern Plaguelands", ID: 139, Left: -2185.417, Right: -6056.25, Top: 3800.0, Bottom: 1218.75},
	{Name: "Elwynn Forest", ID: 12, Left: 1535.417, Right: -1935.417, Top: -7939.583, Bottom: -10254.17},
	{Name: "Hillsbrad Foothills", ID: 267, Left: 1066.667, Right: -2133.333, Top: 400.0, Bottom: -1733.333},
	{Name: "The Hinterlands", ID: 47, Left: -1575.0, Right: -5425.0, Top: 1466.667, Bottom: -1100.0},
	{Name: "Ironforge", ID: 1537, Left: -713.5914, Right: -1504.216, Top: -4569.241, Bottom: -5096.846},
	{Name: "Loch Modan", ID: 38, Left: -1993.75, Right: -4752.083, Top: -4487.5, Bottom: -6327.083},
	{Name: "Redridge Mountains", ID: 44, Left: -1570.833, Right: -3741.667, Top: -8575.0, Bottom: -10022.92},
	{Name: "Searing Gorge", ID: 51, Left: -322.9167, Right: -2554.167, Top: -6100.0, Bottom: -7587.5},
	{Name: "Silverpine Forest", ID: 130, Left: 3450.0, Right: -750.0, Top: 1666.667, Bottom: -1133.333},
	{Name: "Stormwind City", ID: 1519, Left: 1380.971, Right: 36.70063, Top: -8278.851, Bottom: -9175.205},
	{Name: "Stranglethorn Vale", ID: 33, Left: 2220.833, Right: -4160.417, Top: -11168.75, Bottom: -15422.92},
	{Name: "Swamp of Sorrows", ID: 8, Left: -2222.917, Right: -4516.667, Top: -9620.833, Bottom: -11150.0},
	{Name: "Tirisfal Glades", ID: 85, Left: 3033.333, Right: -1485.417, Top: 3837.5, Bottom: 824.9999},
	{Name: "Undercity", ID: 1497, Left: 873.1926, Right: -86.1824, Top: 1877.945, Bottom: 1237.841},
	{Name: "Western Plaguelands", ID: 28, Left: 416.6667, Right: -3883.333, Top: 3366.667, Bottom: 500.0},
	{Name: "Westfall", ID: 40, Left: 3016.667, Right: -483.3333, Top: -9400.0, Bottom: -11733.33},
	{Name: "Wetlands", ID: 11, Left: -389.5833, Right: -4525.0, Top: -2147.917, Bottom: -4904.167},
}

var kalimdor = []types.Zone{
	{Name: "Ashenvale", ID: 331, Left: 1700.0, Right: -4066.667, Top: 4672.917, Bottom: 829.1666},
	{Name: "Aszhara", ID: 16, Left: -3277.083, Right: -8347.916, Top: 5341.667, Bottom: 1960.417},
	{Name: "The Barrens", ID: 17, Left: 2622.917, Right: -7510.417, Top: 1612.5, Bottom: -5143.75},
	{Name: "Darkshore", ID: 148, Left: 2941.667, Right: -3608.333, Top: 8333.333, Bottom: 3966.667},
	{Name: "Darnassus", ID: 1657, Left: 2938.363, Right: 1880.03, Top: 10238.32, Bottom: 9532.587},
	{Name: "Desolace", ID: 405, Left: 4233.333, Right: -262.5, Top: 452.0833, Bottom: -2545.833},
	{Name: "Durotar", ID: 14, Left: -1962.5, Right: -7250.0, Top: 1808.333, Bottom: -1716.667},
	{Name: "Dustwallow Marsh", ID: 15, Left: -974.9999, Right: -6225.0, Top: -2033.333, Bottom: -5533.333},
	{Name: "Felwood", ID: 361, Left: 1641.667, Right: -4108.333, Top: 7133.333, Bottom: 3300.0},
	{Name: "Feralas", ID: 357, Left: 5441.667, Right: -1508.333, Top: -2366.667, Bottom: -7000.0},
	{Name: "Kalimdor", ID: 0, Left: 17066.6, Right: -19733.21, Top: 12799.9, Bottom: -11733.3},
	{Name: "Moonglade", ID: 493, Left: -1381.25, Right: -3689.583, Top: 8491.666, Bottom: 6952.083},
	{Name: "Mulgore", ID: 215, Left: 2047.917, Right: -3089.583, Top: -272.9167, Bottom: -3697.917},
	{Name: "Orgrimmar", ID: 1637, Left: -3680.601, Right: -5083.206, Top: 2273.877, Bottom: 1338.461},
	{Name: "Silithus", ID: 1377, Left: 2537.5, Right: -945.834, Top: -5958.334, Bottom: -8281.25},
	{Name: "Stonetalon Mountains", ID: 406, Left: 3245.833, Right: -1637.5, Top: 2916.667, Bottom: -339.5833},
	{Name: "Tanaris", ID: 440, Left: -218.75, Right: -7118.75, Top: -5875.0, Bottom: -10475.0},
	{Name: "Teldrassil", ID: 141, Left: 3814.583, Right: -1277.083, Top: 11831.25, Bottom: 8437.5},
	{Name: "Thousand Needles", ID: 400, Left: -433.3333, Right: -4833.333, Top: -3966.667, Bottom: -6900.0},
	{Name: "Thunder Bluff", ID: 1638, Left: 516.6666, Right: -527.0833, Top: -849.9999, Bottom: -1545.833},
	{Name: "Ungoro Crater", ID: 490, Left: 533.3333, Right: -3166.667, Top: -5966.667, Bottom: -8433.333},
	{Name: "Winterspring", ID: 618, Left: -316.6667, Right: -7416.667, Top: 8533.333, Bottom: 3800.0},
}

// areas maps a map id to its zone table.
var areas = map[int][]types.Zone{
	MapEasternKingdoms: eastern,
	MapKalimdor:        kalimdor,
}

// byName indexes every zone of both maps by name, byID by area id.
var (
	byName = map[string]types.Zone{}
	byID   = map[int]types.Zone{}
)

func init() {
	for m, zones := range areas {
		for i := range zones {
			zones[i].Map = m
			byName[zones[i].Name] = zones[i]
			if zones[i].ID != 0 {
				byID[zones[i].ID] = zones[i]
			}
		}
	}
}
