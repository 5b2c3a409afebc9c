package classifier

// NumClasses is the size of the fixed traffic-sign label set (GTSRB).
const NumClasses = 43

var classNames = [NumClasses]string{
	"Speed limit (20 km/h)",
	"Speed limit (30 km/h)",
	"Speed limit (50 km/h)",
	"Speed limit (60 km/h)",
	"Speed limit (70 km/h)",
	"Speed limit (80 km/h)",
	"End of speed limit (80 km/h)",
	"Speed limit (100 km/h)",
	"Speed limit (120 km/h)",
	"No overtaking",
	"No overtaking for vehicles over 3.5 tons",
	"Right-of-way at the next intersection",
	"Priority road",
	"Yield",
	"Stop",
	"No vehicles",
	"Vehicles over 3.5 tons prohibited",
	"No entry",
	"General caution",
	"Dangerous curve to the left",
	"Dangerous curve to the right",
	"Double curve",
	"Bumpy road",
	"Slippery road",
	"Road narrows on the right",
	"Road work",
	"Traffic signals",
	"Pedestrians",
	"Children crossing",
	"Bicycles crossing",
	"Beware of ice/snow",
	"Wild animals crossing",
	"End of all speed and overtaking limits",
	"Turn right ahead",
	"Turn left ahead",
	"Ahead only",
	"Go straight or right",
	"Go straight or left",
	"Keep right",
	"Keep left",
	"Roundabout mandatory",
	"End of no overtaking",
	"End of no overtaking for vehicles over 3.5 tons",
}

// ClassName returns the human-readable label for a class index.
func ClassName(i int) string {
	if i < 0 || i >= NumClasses {
		return ""
	}
	return classNames[i]
}
