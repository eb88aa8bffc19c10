package profile

// DefaultDesktopConfig is the desktop profile materialized when no backup
// exists to restore. Values match the navigation program's desktop tuning;
// config_rpi.py overrides the performance-sensitive subset of these.
const DefaultDesktopConfig = `# ------------------------------------------------------------------------------
# Desktop Configuration (generated default)
# ------------------------------------------------------------------------------
# Full-resolution settings for desktop use. Switch to config_rpi.py on a
# Raspberry Pi.
# ------------------------------------------------------------------------------

# Camera settings
CAMERA_WIDTH = 640
CAMERA_HEIGHT = 480
CAMERA_FPS = 15

# YOLO model settings
YOLO_MODEL = "yolo11n.pt"
CONFIDENCE_THRESHOLD = 0.5
IOU_THRESHOLD = 0.5

# Model inference settings
YOLO_INFERENCE_SIZE = 256
YOLO_DEVICE = "cpu"
YOLO_HALF_PRECISION = False
YOLO_MAX_DETECTIONS = 10

# Zone boundaries (as fraction of frame width)
ZONE_LEFT_END = 0.33
ZONE_RIGHT_START = 0.67

# Persistence settings
PERSISTENCE_FRAMES = 2
MAX_TRACKING_DISTANCE = 100

# Audio settings
TTS_ENABLED = True
TTS_RATE = 175
MESSAGE_COOLDOWN = 5.0
GLOBAL_COOLDOWN = 2.0
MAX_ANNOUNCE_OBJECTS = 3

# Performance settings
SKIP_FRAMES = 1  # Process every frame
DISPLAY_ENABLED = True
STATS_ENABLED = True
VERBOSE_LOGGING = True

# Object priorities
CLASS_PRIORITIES = {
    "person": 10,
    "bicycle": 8,
    "car": 9,
    "motorcycle": 8,
    "bus": 9,
    "truck": 9,
    "dog": 7,
    "cat": 7,
    "chair": 3,
    "couch": 4,
    "bed": 5,
    "dining table": 4,
    "potted plant": 2,
    "bench": 4,
    "backpack": 3,
    "handbag": 3,
    "suitcase": 3,
    "bottle": 2,
    "cup": 2,
    "laptop": 5,
    "mouse": 1,
    "keyboard": 1,
    "cell phone": 3,
    "book": 2,
    "clock": 1,
    "vase": 2,
    "scissors": 2,
    "teddy bear": 2,
    "sports ball": 3,
}

# Ultrasonic sensor settings
ULTRASONIC_ENABLED = True
ULTRASONIC_CRITICAL_DISTANCE = 2.0  # meters
ULTRASONIC_WARNING_DISTANCE = 3.0   # meters

# WebSocket settings for mobile app
WEBSOCKET_ENABLED = True
WEBSOCKET_HOST = "0.0.0.0"
WEBSOCKET_PORT = 8765
`
