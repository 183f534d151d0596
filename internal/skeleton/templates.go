package skeleton

// Template catalog for the package skeleton. Each constant is the literal
// body of one generated artifact. Placeholders use the $NAME/${NAME} syntax
// resolved by the render package; the scripts' own shell variables either use
// names that carry no binding or syntax that never parses as a placeholder
// (${modules[@]}, $1, $(cmd)), so they always pass through untouched.

// buildScript compiles the package modules, stages the payload tree,
// synthesizes the DEBIAN/control stanza from package.conf and builds the
// final .deb archive. Only native-language projects receive this body.
const buildScript = `package_conf="../package.conf"
package_tmp_dir=tmpbuild
arch=$ARCH

# Compile all internal applications
compile_applications()
{
    local modules=$(cfget -C $package_conf package/modules)

    for app in ${modules[@]}; do
        (cd ../../$app/src && make clean && make)
    done
}

# Prepare the current environment to build the package
prepare_to_build()
{
    rm -f *.deb
    mkdir -p $package_tmp_dir/{DEBIAN,usr/bin,etc/{cron.d,init.d}}
}

# Copy all necessary files
copy_necessary_files()
{
    local modules=$(cfget -C $package_conf package/modules)

    prepare_to_build

    # Copy all binaries
    for app in ${modules[@]}; do
        cp -f ../../$app/bin/$arch/* $package_tmp_dir/usr/bin || \
            echo "Error while copying binary from module '$app'."
    done

    # Copy misc scripts
    local dest_cron=$(basename ../misc/*_cron _cron)
    cp -f ../misc/*_cron $package_tmp_dir/etc/cron.d/$dest_cron || \
        echo "Error copying to file '$dest_cron'."

    local dest_init=$(basename ../misc/*_initd _initd)
    cp -f ../misc/*_initd $package_tmp_dir/etc/init.d/$dest_init || \
        echo "Error copying to file '$dest_init'."

    # Copy all debian scripts
    for script in postinst postrm preinst prerm; do
        cp -f ../debian/$script $package_tmp_dir/DEBIAN || \
            echo "Error copying file '$script'."
    done
}

clear_temporary_files()
{
    rm -rf $package_tmp_dir
}

# Build the package
build_package()
{
    # Build all package info, such as version, revision, etc
    local package=$(cfget -C $package_conf package/name)
    local major=$(cfget -C $package_conf version/major)
    local minor=$(cfget -C $package_conf version/minor)
    local release=$(cfget -C $package_conf version/release)
    local beta_release=$(cfget -C $package_conf version/beta)
    local version=$major.$minor.$release

    local depends=''
    local maintainer='$MAINTAINER'
    local description=''

    # Create CONTROL file
    cat << CONTROL >> $package_tmp_dir/DEBIAN/control
Package: $package
Priority: optional
Version: $version
Architecture: $arch
Depends: $depends
Maintainer: $maintainer
Description: $description
CONTROL

    # Build the package
    if [ $beta_release == true ]; then
        beta="-Beta"
    else
        beta=""
    fi

    deb_filename=$package-$version$beta.deb
    fakeroot dpkg-deb -Zgzip -b $package_tmp_dir $deb_filename

    clear_temporary_files
}

usage()
{
    echo "Usage: ./build-package [OPTIONS]"
    echo
    echo "Options"
    echo -e " -h\t\tShows this help screen."
    echo -e " -a [arch]\tDefines the package destination architecture."
    echo

    exit 1
}

while getopts "ha:" OPTION; do
    case $OPTION in
        h)
            usage
            ;;
        a)
            arch=$OPTARG
            ;;
        \?)
            exit 1
            ;;
    esac
done

compile_applications
copy_necessary_files
build_package
`

// cleanScript runs the per-module clean step and removes built archives.
const cleanScript = `package_dir=../../

# Remove older versions
rm -rf *.deb

for arq in $package_dir*/src; do
    echo "Cleaning source directory: $arq"
    (cd $arq && make clean)
done
`

// cronEntry keeps the daemon alive: every minute the init script's status
// action runs and, on failure, the start action.
const cronEntry = `SHELL=/bin/sh
PATH=/usr/local/sbin:/usr/local/bin:/sbin:/bin:/usr/sbin:/usr/bin

*/1 * * * *    root    /etc/init.d/$PROJECT_NAME.sh status || /etc/init.d/$PROJECT_NAME.sh start
`

// initScript is a LSB init.d script for the packaged daemon. Status exit
// codes follow the LSB convention: 0 running, 1 pid file without process,
// 3 not running.
const initScript = `#!/bin/sh

. /lib/lsb/init-functions

case "$1" in
    start)
        log_begin_msg "Starting $PROJECT_NAME: "

        if start-stop-daemon --start --quiet --exec /usr/local/bin/$PROJECT_NAME; then
            log_end_msg 0
        else
            log_end_msg 1
        fi
        ;;

    stop)
        log_begin_msg "Shutting down $PROJECT_NAME: "

        if start-stop-daemon --stop --quiet --exec /usr/local/bin/$PROJECT_NAME; then
            log_end_msg 0
        else
            log_end_msg 1
        fi
        ;;

    status)
        if [ -s /var/run/$PROJECT_NAME.pid ]; then
            if kill -0 $(cat /var/run/$PROJECT_NAME.pid) 2>/dev/null; then
                log_success_msg "$PROJECT_NAME is running"
                exit 0
            else
                log_failure_msg "/var/run/$PROJECT_NAME.pid exists but $PROJECT_NAME is not running"
                exit 1
            fi
        else
            log_success_msg "$PROJECT_NAME is not running"
            exit 3
        fi
        ;;

    restart)
        $0 stop
        sleep 5
        $0 start
        ;;

    reload)
        log_begin_msg "Restarting $PROJECT_NAME: "
        start-stop-daemon --stop --signal 10 --exec /usr/local/bin/$PROJECT_NAME || log_end_msg 1
        log_end_msg 0
        ;;

    *)
        log_begin_msg "Usage: $0 (start|stop|status|restart|reload)"
        exit 1
esac

exit 0
`

// packageConf is the package manifest consumed by the build script via cfget.
const packageConf = `# Main package information.
# The package modules must be separated by spaces.
[package]
name=$PROJECT_NAME
modules=$PROJECT_NAME

# Package version: major.minor.release
# Example: 0.1.1
[version]
major=$VERSION_MAJOR
minor=$VERSION_MINOR
release=$VERSION_RELEASE
beta=$VERSION_BETA
`
